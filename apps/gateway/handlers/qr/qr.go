package qr

import (
	"errors"

	"qrmenu/internal/brand"
	"qrmenu/internal/branch"
	"qrmenu/internal/menu"
	"qrmenu/internal/qr"
	"qrmenu/internal/responses"
	"qrmenu/internal/structs"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

// QR images may be cached by clients for a day.
const cacheMaxAge = 24 * 60 * 60

type (
	Handler interface {
		GetBranchQR(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger    logger.Logger
		Brands    brand.Registry
		Branch    branch.Service
		Generator qr.Generator
	}

	handler struct {
		logger    logger.Logger
		brands    brand.Registry
		branch    branch.Service
		generator qr.Generator
	}
)

func New(p Params) Handler {
	return &handler{
		logger:    p.Logger,
		brands:    p.Brands,
		branch:    p.Branch,
		generator: p.Generator,
	}
}

// GetBranchQR returns a PNG QR code linking to the canonical menu URL of the
// branch in :branchSlug.
func (h *handler) GetBranchQR(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	b, paths, err := h.brand(c)
	if err != nil {
		response = responses.NotFound
		response.Message = err.Error()
		reply.Json(c.Writer, response.Code, &response)
		return
	}

	branches, err := h.branch.List(ctx, b.Reference)
	if err != nil {
		h.logger.Error(ctx, " err on h.branch.List", zap.Error(err))
		response = responses.BadGateway
		reply.Json(c.Writer, response.Code, &response)
		return
	}

	found, err := branch.Resolve(branches, c.Param("branchSlug"))
	if err != nil {
		if !errors.Is(err, structs.ErrBranchNotFound) {
			h.logger.Error(ctx, " err on branch.Resolve", zap.Error(err))
		}
		response = responses.NotFound
		response.Message = structs.ErrBranchNotFound.Error()
		reply.Json(c.Writer, response.Code, &response)
		return
	}

	png, err := h.generator.Generate(paths.Branch(branch.Slug(found)))
	if err != nil {
		h.logger.Error(ctx, " err on h.generator.Generate", zap.Error(err))
		response = responses.InternalErr
		reply.Json(c.Writer, response.Code, &response)
		return
	}

	reply.PNG(c.Writer, png, cacheMaxAge)
}

func (h *handler) brand(c *gin.Context) (structs.Brand, menu.Paths, error) {
	if slug := c.Param("brandSlug"); slug != "" {
		b, err := h.brands.BySlug(slug)
		return b, menu.BrandPaths(b.Slug), err
	}
	b, err := h.brands.Default()
	return b, menu.DefaultPaths(), err
}
