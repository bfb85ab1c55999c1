package brand

import (
	"context"
	"fmt"
	"strings"

	"qrmenu/internal/structs"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Config config.IConfig
		Logger logger.Logger
	}

	Registry interface {
		Default() (structs.Brand, error)
		BySlug(slug string) (structs.Brand, error)
		AllowBackNavigation(b structs.Brand, branchID int64) bool
	}

	registry struct {
		brands []structs.Brand
		def    int
	}
)

func New(p Params) (Registry, error) {
	var brands []structs.Brand
	if err := p.Config.UnmarshalKey("brands", &brands); err != nil {
		return nil, fmt.Errorf("unmarshal brands: %w", err)
	}

	if len(brands) == 0 {
		if ref := p.Config.GetString("brand.reference"); ref != "" {
			brands = append(brands, structs.Brand{
				Slug:      strings.ToLower(ref),
				Name:      p.Config.GetString("brand.name"),
				NameAr:    p.Config.GetString("brand.name_ar"),
				Reference: ref,
				Default:   true,
			})
		}
	}

	r := NewRegistry(brands)
	p.Logger.Info(context.Background(), "brands loaded", zap.Int("count", len(brands)))
	return r, nil
}

// NewRegistry indexes brands. The first brand flagged default wins, else the first one.
func NewRegistry(brands []structs.Brand) Registry {
	r := &registry{brands: brands}
	for i, b := range brands {
		if b.Default {
			r.def = i
			break
		}
	}
	return r
}

func (r *registry) Default() (structs.Brand, error) {
	if len(r.brands) == 0 {
		return structs.Brand{}, structs.ErrBrandNotFound
	}
	return r.brands[r.def], nil
}

func (r *registry) BySlug(slug string) (structs.Brand, error) {
	for _, b := range r.brands {
		if strings.EqualFold(b.Slug, slug) {
			return b, nil
		}
	}
	return structs.Brand{}, structs.ErrBrandNotFound
}

// AllowBackNavigation reports whether the menu of branchID may link back to
// the branch list. Branches without settings allow it.
func (r *registry) AllowBackNavigation(b structs.Brand, branchID int64) bool {
	for _, s := range b.Branches {
		if s.ID == branchID && s.AllowBackNavigation != nil {
			return *s.AllowBackNavigation
		}
	}
	return true
}
