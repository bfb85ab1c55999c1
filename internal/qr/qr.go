package qr

import (
	"strings"

	"qrmenu/pkg/config"

	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

const DefaultSize = 256

type (
	Params struct {
		fx.In
		Config config.IConfig
	}

	// Generator renders QR codes pointing at public menu pages.
	Generator interface {
		URL(path string) string
		Generate(path string) ([]byte, error)
	}

	generator struct {
		baseURL string
		size    int
	}
)

func New(p Params) Generator {
	size := p.Config.GetInt("qr.size")
	if size <= 0 {
		size = DefaultSize
	}
	return &generator{
		baseURL: strings.TrimRight(p.Config.GetString("site.base_url"), "/"),
		size:    size,
	}
}

// URL is the absolute address of path on the public site.
func (g generator) URL(path string) string {
	return g.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (g generator) Generate(path string) ([]byte, error) {
	return qrcode.Encode(g.URL(path), qrcode.Medium, g.size)
}
