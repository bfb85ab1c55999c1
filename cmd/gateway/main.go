package main

import (
	"qrmenu/apps/gateway"
	"qrmenu/cmd/gateway/router"
	"qrmenu/internal"
	"qrmenu/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		gateway.Module,
		router.Module,
		pkg.Module,
		internal.Module,
	).Run()
}
