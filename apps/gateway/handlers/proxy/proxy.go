package proxy

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"

	"qrmenu/internal/structs"
	"qrmenu/internal/upstream"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type (
	// Handler exposes the three browser facing relay functions of the
	// ordering API. Responses keep the raw upstream contract.
	Handler interface {
		GetBranches(c *gin.Context)
		GetCategories(c *gin.Context)
		GetProducts(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger   logger.Logger
		Upstream upstream.Service
	}

	handler struct {
		logger   logger.Logger
		upstream upstream.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:   p.Logger,
		upstream: p.Upstream,
	}
}

func (h *handler) GetBranches(c *gin.Context) {
	q := url.Values{}
	q.Set("brandReference", c.Query("brandReference"))

	h.forward(c, upstream.Branches, q)
}

func (h *handler) GetCategories(c *gin.Context) {
	q := url.Values{}
	q.Set("brandReference", c.Query("brandReference"))
	setIfPresent(c, q, "branchId")

	h.forward(c, upstream.Categories, q)
}

func (h *handler) GetProducts(c *gin.Context) {
	q := url.Values{}
	q.Set("pageNo", queryOr(c, "pageNo", cast.ToString(upstream.DefaultPageNo)))
	q.Set("pageSize", queryOr(c, "pageSize", cast.ToString(upstream.DefaultPageSize)))
	q.Set("brandReference", c.Query("brandReference"))
	setIfPresent(c, q, "categoryId")
	setIfPresent(c, q, "includeModifiers")
	setIfPresent(c, q, "branchId")

	h.forward(c, upstream.Products, q)
}

func (h *handler) forward(c *gin.Context, ep upstream.Endpoint, q url.Values) {
	ctx := c.Request.Context()

	if q.Get("brandReference") == "" {
		reply.Error(c.Writer, http.StatusBadRequest, structs.ErrMissingBrandReference.Error())
		return
	}

	status, body, err := h.upstream.Forward(ctx, ep, q)
	if err != nil {
		h.logger.Error(ctx, " err on h.upstream.Forward", zap.String("endpoint", string(ep)), zap.Error(err))
		reply.Error(c.Writer, http.StatusInternalServerError, err.Error())
		return
	}
	if status < 200 || status > 299 {
		err = &upstream.StatusError{Status: status}
		h.logger.Error(ctx, " upstream not ok", zap.String("endpoint", string(ep)), zap.Int("status", status))
		reply.Error(c.Writer, http.StatusInternalServerError, err.Error())
		return
	}

	var out bytes.Buffer
	if err = json.Compact(&out, body); err != nil {
		h.logger.Error(ctx, " err on json.Compact", zap.String("endpoint", string(ep)), zap.Error(err))
		reply.Error(c.Writer, http.StatusInternalServerError, err.Error())
		return
	}

	reply.Raw(c.Writer, http.StatusOK, out.Bytes())
}

func setIfPresent(c *gin.Context, q url.Values, key string) {
	if v := c.Query(key); v != "" {
		q.Set(key, v)
	}
}

func queryOr(c *gin.Context, key, def string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return def
}
