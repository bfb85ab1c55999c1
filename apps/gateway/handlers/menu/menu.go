package menu

import (
	"errors"

	"qrmenu/apps/gateway/handlers/middleware"
	"qrmenu/internal/brand"
	"qrmenu/internal/menu"
	"qrmenu/internal/responses"
	"qrmenu/internal/structs"
	"qrmenu/internal/texts"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/reply"
	"qrmenu/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

const (
	SessionHeader = "X-Menu-Session"
	sessionCookie = "menu_session"
)

type (
	Handler interface {
		GetMenu(c *gin.Context)
		PostAction(c *gin.Context)
	}
	Params struct {
		fx.In
		Logger      logger.Logger
		Brands      brand.Registry
		MenuService menu.Service
	}

	handler struct {
		logger      logger.Logger
		brands      brand.Registry
		menuService menu.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		brands:      p.Brands,
		menuService: p.MenuService,
	}
}

// GetMenu renders the menu page state for the URL. The brand comes from the
// :brandSlug param or the deployment default, the branch from :branchSlug.
func (h *handler) GetMenu(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		lang     = middleware.LangFrom(c)
	)

	defer func() { reply.Json(c.Writer, response.Code, &response) }()

	b, paths, err := h.brand(c)
	if err != nil {
		h.logger.Warn(ctx, " brand not found", zap.String("brand", c.Param("brandSlug")))
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.BrandNotFound)
		return
	}

	loc, err := location(c)
	if err != nil {
		h.logger.Warn(ctx, " err parse menu query", zap.Error(err))
		response = responses.BadRequest
		response.Message = texts.Get(lang, texts.InvalidURL)
		return
	}

	view := h.menuService.Open(b, lang, paths)
	err = view.Restore(ctx, loc)
	switch {
	case err == nil:
		response = responses.Success
	case errors.Is(err, structs.ErrBranchNotFound):
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.BranchNotFound)
	case errors.Is(err, structs.ErrProductNotFound):
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.ProductNotFound)
	case errors.Is(err, structs.ErrMissingBrandReference):
		h.logger.Error(ctx, " brand has no reference", zap.String("brand", b.Slug))
		response = responses.InternalErr
		return
	default:
		h.logger.Error(ctx, " err on view.Restore", zap.Error(err))
		response = responses.InternalErr
		return
	}

	id := sessionID(c)
	if _, err = h.menuService.Session(id, b); err != nil {
		id = ""
	}
	id = h.menuService.Attach(id, view)
	c.Header(SessionHeader, id)
	c.SetCookie(sessionCookie, id, int(menu.DefaultSessionTTL.Seconds()), "/", "", false, true)

	response.Payload = view.Snapshot()
}

// PostAction applies one interaction to the menu session opened by GetMenu
// and answers with the resulting page state.
func (h *handler) PostAction(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
		lang     = middleware.LangFrom(c)
		action   structs.MenuAction
	)

	defer func() { reply.Json(c.Writer, response.Code, &response) }()

	b, _, err := h.brand(c)
	if err != nil {
		h.logger.Warn(ctx, " brand not found", zap.String("brand", c.Param("brandSlug")))
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.BrandNotFound)
		return
	}

	view, err := h.menuService.Session(sessionID(c), b)
	if err != nil {
		h.logger.Warn(ctx, " err on menuService.Session", zap.Error(err))
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.SessionExpired)
		return
	}

	if err = c.ShouldBindJSON(&action); err != nil {
		h.logger.Warn(ctx, " err parse menu action", zap.Error(err))
		response = responses.BadRequest
		response.Message = texts.Get(lang, texts.InvalidAction)
		return
	}

	err = view.Apply(ctx, action)
	// set_language switches the messages too
	lang = view.Lang()
	switch {
	case err == nil:
		response = responses.Success
	case errors.Is(err, structs.ErrBadRequest):
		response = responses.BadRequest
		response.Message = texts.Get(lang, texts.InvalidAction)
	case errors.Is(err, structs.ErrNoBranchSelected):
		response = responses.BadRequest
		response.Message = texts.Get(lang, texts.NoBranchSelected)
	case errors.Is(err, structs.ErrBranchNotFound):
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.BranchNotFound)
	case errors.Is(err, structs.ErrProductNotFound):
		response = responses.NotFound
		response.Message = texts.Get(lang, texts.ProductNotFound)
	case errors.Is(err, structs.ErrBackNavigationDisabled):
		response = responses.Forbidden
		response.Message = texts.Get(lang, texts.BackNotAllowed)
	default:
		h.logger.Error(ctx, " err on view.Apply", zap.String("action", string(action.Type)), zap.Error(err))
		response = responses.InternalErr
		return
	}

	response.Payload = view.Snapshot()
}

func (h *handler) brand(c *gin.Context) (structs.Brand, menu.Paths, error) {
	if slug := c.Param("brandSlug"); slug != "" {
		b, err := h.brands.BySlug(slug)
		return b, menu.BrandPaths(b.Slug), err
	}
	b, err := h.brands.Default()
	return b, menu.DefaultPaths(), err
}

func sessionID(c *gin.Context) string {
	if id := c.GetHeader(SessionHeader); id != "" {
		return id
	}
	id, _ := c.Cookie(sessionCookie)
	return id
}

func location(c *gin.Context) (menu.Location, error) {
	var (
		loc = menu.Location{Slug: c.Param("branchSlug")}
		err error
	)

	if loc.Category, err = utils.ParseOptionalInt64(c.Query("category")); err != nil {
		return loc, err
	}
	if loc.Product, err = utils.ParseOptionalInt64(c.Query("product")); err != nil {
		return loc, err
	}
	if page := c.Query("page"); page != "" {
		if loc.Page, err = cast.ToIntE(page); err != nil {
			return loc, err
		}
	}
	return loc, nil
}
