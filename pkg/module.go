package pkg

import (
	"go.uber.org/fx"

	"qrmenu/pkg/cache"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/reply"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	cache.Module,
	reply.Module,
)
