package middleware

import (
	"net/http"

	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(NewMiddleware)
)

const (
	RequestIDHeader = "X-Request-ID"
	langKey         = "lang"
)

// Headers the proxy functions answer preflights with.
const proxyAllowHeaders = "authorization, x-client-info, apikey, content-type"

type (
	Middleware interface {
		Ctx() gin.HandlerFunc
		Lang() gin.HandlerFunc
		Cors() gin.HandlerFunc
	}

	Params struct {
		fx.In

		Logger logger.Logger
		Config config.IConfig
	}

	mw struct {
		logger logger.Logger
		config config.IConfig
	}
)

func NewMiddleware(params Params) Middleware {
	return &mw{
		logger: params.Logger,
		config: params.Config,
	}
}

// Ctx attaches a log context and a request id to the request.
func (m *mw) Ctx() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = utils.GenKSUID()
		}

		ctx := m.logger.Context(c.Request.Context())
		ctx = m.logger.WithRequestID(ctx, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// Lang picks the response language from ?lang=, then the lang cookie, then
// Accept-Language.
func (m *mw) Lang() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, ok := utils.ParseLang(c.Query(langKey))
		if ok {
			c.SetCookie(langKey, string(lang), 365*24*60*60, "/", "", false, false)
		} else if cookie, err := c.Cookie(langKey); err == nil {
			lang, ok = utils.ParseLang(cookie)
		}
		if !ok {
			lang = utils.MatchAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		m.logger.Debug(c.Request.Context(), "language", zap.String("lang", string(lang)))
		c.Set(langKey, lang)
		c.Header("Content-Language", string(lang))
		c.Next()
	}
}

// Cors sets the static headers of the proxy functions and ends preflights.
func (m *mw) Cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", proxyAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// LangFrom returns the language chosen by Lang, English when unset.
func LangFrom(c *gin.Context) utils.Lang {
	if v, ok := c.Get(langKey); ok {
		if lang, ok := v.(utils.Lang); ok {
			return lang
		}
	}
	return utils.EN
}
