package menu

import (
	"fmt"
	"strings"

	"qrmenu/internal/brand"
	"qrmenu/internal/branch"
	"qrmenu/internal/category"
	"qrmenu/internal/product"
	"qrmenu/internal/structs"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/utils"

	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

const (
	DefaultPageSize = 6
	AllergensImage  = "/license.png"
	apiPrefix       = "/api/v1"
)

type (
	Params struct {
		fx.In
		Config   config.IConfig
		Logger   logger.Logger
		Brands   brand.Registry
		Branch   branch.Service
		Category category.Service
		Product  product.Service
	}

	// Service opens menu views. A view lives for one request or one client
	// session and is safe for concurrent use.
	Service interface {
		Open(b structs.Brand, lang utils.Lang, paths Paths) *View
		// Attach keeps v under session id, a new id when id is empty.
		Attach(id string, v *View) string
		// Session returns the view kept for id when it belongs to brand b.
		Session(id string, b structs.Brand) (*View, error)
	}

	service struct {
		logger    logger.Logger
		brands    brand.Registry
		branch    branch.Service
		category  category.Service
		product   product.Service
		imageBase string
		pageSize  int
		sessions  *sessions
	}
)

// Paths builds the client-facing URLs of one brand.
type Paths struct {
	Base string
}

// DefaultPaths serves the deployment's default brand at /menu.
func DefaultPaths() Paths {
	return Paths{Base: "/menu"}
}

// BrandPaths serves a brand under its own prefix.
func BrandPaths(brandSlug string) Paths {
	return Paths{Base: "/brands/" + strings.ToLower(brandSlug) + "/menu"}
}

func (p Paths) Menu() string {
	return p.Base
}

func (p Paths) Branch(slug string) string {
	return p.Base + "/" + slug
}

func (p Paths) QR(slug string) string {
	return apiPrefix + p.Branch(slug) + "/qr.png"
}

func New(p Params) Service {
	size := p.Config.GetInt("menu.page_size")
	if size < 1 {
		size = DefaultPageSize
	}
	return &service{
		logger:    p.Logger,
		brands:    p.Brands,
		branch:    p.Branch,
		category:  p.Category,
		product:   p.Product,
		imageBase: p.Config.GetString("upstream.image_base_url"),
		pageSize:  size,
		sessions:  newSessions(p.Config.GetDuration("menu.session_ttl")),
	}
}

func (s *service) Open(b structs.Brand, lang utils.Lang, paths Paths) *View {
	return &View{
		svc:   s,
		coord: NewCoordinator(),
		brand: b,
		lang:  lang,
		paths: paths,
		state: structs.StateNoBranchSelected,
		pager: utils.NewPaginator(s.pageSize),
		url:   paths.Menu(),

		categorySection: structs.Section{Status: structs.SectionIdle},
		productSection:  structs.Section{Status: structs.SectionIdle},
	}
}

func (s *service) Attach(id string, v *View) string {
	return s.sessions.put(id, v)
}

func (s *service) Session(id string, b structs.Brand) (*View, error) {
	v, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}
	if v.brand.Slug != b.Slug {
		return nil, fmt.Errorf("session %q belongs to another brand: %w", id, structs.ErrNotFound)
	}
	return v, nil
}
