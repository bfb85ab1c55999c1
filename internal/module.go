package internal

import (
	"qrmenu/internal/brand"
	"qrmenu/internal/branch"
	"qrmenu/internal/category"
	"qrmenu/internal/menu"
	"qrmenu/internal/product"
	"qrmenu/internal/qr"
	"qrmenu/internal/upstream"

	"go.uber.org/fx"
)

var Module = fx.Options(
	upstream.Module,
	brand.Module,
	branch.Module,
	category.Module,
	product.Module,
	menu.Module,
	qr.Module,
)
