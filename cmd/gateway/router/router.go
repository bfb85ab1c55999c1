package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"qrmenu/apps/gateway/handlers/health"
	"qrmenu/apps/gateway/handlers/menu"
	"qrmenu/apps/gateway/handlers/middleware"
	"qrmenu/apps/gateway/handlers/proxy"
	"qrmenu/apps/gateway/handlers/qr"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(NewEngine),
	fx.Invoke(
		NewRouter,
	),
)

type Params struct {
	fx.In

	middleware.Middleware
	Config config.IConfig
	Logger logger.Logger
	Health health.Handler
	Proxy  proxy.Handler
	Menu   menu.Handler
	QR     qr.Handler
}

type ServerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.IConfig
	Logger    logger.Logger
	Engine    *gin.Engine
}

// NewEngine registers every route on a fresh gin engine.
func NewEngine(params Params) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(params.Config.GetStringSlice("gin.trusted_proxies"))
	r.Use(params.Ctx(), gin.Logger(), gin.Recovery())

	r.GET("/healthz", params.Health.Check)

	functions := r.Group("/functions/v1")
	functions.Use(params.Cors())
	{
		functions.Match([]string{http.MethodGet, http.MethodOptions}, "/get-branches", params.Proxy.GetBranches)
		functions.Match([]string{http.MethodGet, http.MethodOptions}, "/get-categories", params.Proxy.GetCategories)
		functions.Match([]string{http.MethodGet, http.MethodOptions}, "/get-products", params.Proxy.GetProducts)
	}

	api := r.Group("/api/v1")
	api.Use(params.Lang())

	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("", params.Menu.GetMenu)
		menuGroup.POST("/actions", params.Menu.PostAction)
		menuGroup.GET("/:branchSlug", params.Menu.GetMenu)
		menuGroup.GET("/:branchSlug/qr.png", params.QR.GetBranchQR)
	}

	brandGroup := api.Group("/brands/:brandSlug/menu")
	{
		brandGroup.GET("", params.Menu.GetMenu)
		brandGroup.POST("/actions", params.Menu.PostAction)
		brandGroup.GET("/:branchSlug", params.Menu.GetMenu)
		brandGroup.GET("/:branchSlug/qr.png", params.QR.GetBranchQR)
	}

	return r
}

func NewRouter(params ServerParams) {
	server := http.Server{
		Addr:              params.Config.GetString("server.port"),
		ReadHeaderTimeout: 10 * time.Second,
		Handler: cors.New(cors.Options{
			AllowedHeaders:     []string{"*"},
			AllowedOrigins:     params.Config.GetStringSlice("cors.allowed_origins"),
			AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			OptionsPassthrough: true,
		}).Handler(params.Engine),
	}

	params.Lifecycle.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Starting application")
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						params.Logger.Error(ctx, "Err on ListenAndServe", zap.Error(err))
					}
				}()

				params.Logger.Info(ctx, "Application starting on port", zap.String("port", params.Config.GetString("server.port")))
				return nil
			},
			OnStop: func(ctx context.Context) error {
				params.Logger.Info(ctx, "Application stopped")
				return server.Shutdown(ctx)
			},
		},
	)
}
