package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"qrmenu/apps/gateway/handlers/middleware"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func write(c *gin.Context, name string) { c.String(http.StatusOK, name) }

type fakeHealth struct{}

func (fakeHealth) Check(c *gin.Context) { write(c, "health") }

type fakeProxy struct{}

func (fakeProxy) GetBranches(c *gin.Context)   { write(c, "branches") }
func (fakeProxy) GetCategories(c *gin.Context) { write(c, "categories") }
func (fakeProxy) GetProducts(c *gin.Context)   { write(c, "products") }

type fakeMenu struct{}

func (fakeMenu) GetMenu(c *gin.Context) {
	write(c, "menu:"+c.Param("brandSlug")+":"+c.Param("branchSlug"))
}

func (fakeMenu) PostAction(c *gin.Context) {
	write(c, "action:"+c.Param("brandSlug"))
}

type fakeQR struct{}

func (fakeQR) GetBranchQR(c *gin.Context) { write(c, "qr:"+c.Param("branchSlug")) }

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	lg := logger.New("error")
	cfg := config.FromViper(viper.New())
	return NewEngine(Params{
		Middleware: middleware.NewMiddleware(middleware.Params{Logger: lg, Config: cfg}),
		Config:     cfg,
		Logger:     lg,
		Health:     fakeHealth{},
		Proxy:      fakeProxy{},
		Menu:       fakeMenu{},
		QR:         fakeQR{},
	})
}

func TestRoutes(t *testing.T) {
	r := newTestEngine()

	cases := map[string]string{
		"/healthz":                               "health",
		"/functions/v1/get-branches":             "branches",
		"/functions/v1/get-categories":           "categories",
		"/functions/v1/get-products":             "products",
		"/api/v1/menu":                           "menu::",
		"/api/v1/menu/main-branch-30":            "menu::main-branch-30",
		"/api/v1/menu/main-branch-30/qr.png":     "qr:main-branch-30",
		"/api/v1/brands/wags/menu":               "menu:wags:",
		"/api/v1/brands/wags/menu/mall-7":        "menu:wags:mall-7",
		"/api/v1/brands/wags/menu/mall-7/qr.png": "qr:mall-7",
	}
	for target, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, want, w.Body.String(), target)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader), target)
	}
}

func TestActionRoutes(t *testing.T) {
	r := newTestEngine()

	cases := map[string]string{
		"/api/v1/menu/actions":             "action:",
		"/api/v1/brands/wags/menu/actions": "action:wags",
	}
	for target, want := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, want, w.Body.String(), target)
	}

	// GET keeps treating the segment as a branch slug
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/menu/actions", nil))
	assert.Equal(t, "menu::actions", w.Body.String())
}

func TestFunctionPreflight(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/functions/v1/get-products", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
