package health

import (
	"net/http"

	"qrmenu/internal/responses"
	"qrmenu/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var Module = fx.Provide(New)

type Handler interface {
	Check(c *gin.Context)
}

type handler struct{}

func New() Handler {
	return &handler{}
}

func (h *handler) Check(c *gin.Context) {
	response := responses.Success
	reply.Json(c.Writer, http.StatusOK, &response)
}
