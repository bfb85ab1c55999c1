package config

import (
	"os"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Module = fx.Provide(NewConfig)

type IConfig interface {
	Get(key string) interface{}
	GetBool(key string) bool
	GetFloat64(key string) float64
	GetInt(key string) int
	GetInt64(key string) int64
	GetIntSlice(key string) []int
	GetString(key string) string
	GetStringMap(key string) map[string]interface{}
	GetStringMapString(key string) map[string]string
	UnmarshalKey(key string, val interface{}) error
	GetStringSlice(key string) []string
	GetDuration(key string) time.Duration
	IsSet(key string) bool
}

type config struct {
	cfg *viper.Viper
}

func NewConfig() IConfig {
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	setDefaults(cfg)

	_ = cfg.BindEnv("server.host", "SERVICE_HOST")
	_ = cfg.BindEnv("server.port", "SERVICE_HTTP_PORT")
	_ = cfg.BindEnv("log.level", "LOG_LEVEL")
	_ = cfg.BindEnv("site.base_url", "SITE_BASE_URL")
	_ = cfg.BindEnv("brand.reference", "BRAND_REFERENCE")
	_ = cfg.BindEnv("upstream.branches_url", "UPSTREAM_BRANCHES_URL")
	_ = cfg.BindEnv("upstream.categories_url", "UPSTREAM_CATEGORIES_URL")
	_ = cfg.BindEnv("upstream.products_url", "UPSTREAM_PRODUCTS_URL")
	_ = cfg.BindEnv("upstream.image_base_url", "UPSTREAM_IMAGE_BASE_URL")
	_ = cfg.BindEnv("upstream.timeout", "UPSTREAM_TIMEOUT")
	_ = cfg.BindEnv("cache.ttl", "CACHE_TTL")
	_ = cfg.BindEnv("menu.page_size", "MENU_PAGE_SIZE")
	_ = cfg.BindEnv("menu.session_ttl", "MENU_SESSION_TTL")
	_ = cfg.BindEnv("qr.size", "QR_SIZE")
	_ = cfg.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = cfg.BindEnv("redis.addrs", "REDIS_ADDRS")
	_ = cfg.BindEnv("gin.trusted_proxies", "GIN_TRUSTED_PROXIES")

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		cfg.Set("redis.addrs", strings.Split(addrs, ","))
	}
	if proxies := os.Getenv("GIN_TRUSTED_PROXIES"); proxies != "" {
		cfg.Set("gin.trusted_proxies", strings.Split(proxies, ","))
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Set("cors.allowed_origins", strings.Split(origins, ","))
	}

	// brands and per-branch settings only fit a file
	if file := os.Getenv("CONFIG_FILE"); file != "" {
		cfg.SetConfigFile(file)
		_ = cfg.ReadInConfig()
	}

	return &config{cfg: cfg}
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault("server.port", ":8080")
	cfg.SetDefault("log.level", "debug")
	cfg.SetDefault("site.base_url", "http://localhost:8080")
	cfg.SetDefault("upstream.branches_url", "https://api-order.wags.sa/api/branch/all")
	cfg.SetDefault("upstream.categories_url", "https://api-order.wags.sa/api/category/getCategoryList")
	cfg.SetDefault("upstream.products_url", "http://51.112.221.81:8000/api/products/getAllProducts")
	cfg.SetDefault("upstream.image_base_url", "https://api-order.wags.sa")
	cfg.SetDefault("upstream.timeout", 15*time.Second)
	cfg.SetDefault("cache.ttl", time.Duration(0))
	cfg.SetDefault("menu.page_size", 6)
	cfg.SetDefault("menu.session_ttl", 30*time.Minute)
	cfg.SetDefault("qr.size", 256)
	cfg.SetDefault("redis.prefix", "qrmenu")
	cfg.SetDefault("cors.allowed_origins", []string{"*"})
}

func (c *config) Get(key string) interface{} {
	return c.cfg.Get(key)
}

func (c *config) GetBool(key string) bool {
	return c.cfg.GetBool(key)
}

func (c *config) GetFloat64(key string) float64 {
	return c.cfg.GetFloat64(key)
}

func (c *config) GetInt(key string) int {
	return c.cfg.GetInt(key)
}

func (c *config) GetInt64(key string) int64 {
	return c.cfg.GetInt64(key)
}

func (c *config) GetIntSlice(key string) []int {
	return c.cfg.GetIntSlice(key)
}

func (c *config) GetString(key string) string {
	return c.cfg.GetString(key)
}

func (c *config) GetStringSlice(key string) []string {
	return c.cfg.GetStringSlice(key)
}

func (c *config) GetStringMap(key string) map[string]interface{} {
	return c.cfg.GetStringMap(key)
}
func (c *config) GetStringMapString(key string) map[string]string {
	return c.cfg.GetStringMapString(key)
}

func (c *config) UnmarshalKey(key string, val interface{}) error {
	return c.cfg.UnmarshalKey(key, val)
}

func (c *config) GetDuration(key string) time.Duration {
	return c.cfg.GetDuration(key)
}

func (c *config) IsSet(key string) bool {
	return c.cfg.IsSet(key)
}

// FromViper wraps an already populated viper instance. Used by tests.
func FromViper(v *viper.Viper) IConfig {
	return &config{cfg: v}
}
