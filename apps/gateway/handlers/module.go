package handlers

import (
	"qrmenu/apps/gateway/handlers/health"
	"qrmenu/apps/gateway/handlers/menu"
	"qrmenu/apps/gateway/handlers/middleware"
	"qrmenu/apps/gateway/handlers/proxy"
	"qrmenu/apps/gateway/handlers/qr"

	"go.uber.org/fx"
)

var Module = fx.Options(
	middleware.Module,
	health.Module,
	proxy.Module,
	menu.Module,
	qr.Module,
)
