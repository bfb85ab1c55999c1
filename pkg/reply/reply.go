package reply

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"qrmenu/pkg/logger"
)

var Module = fx.Invoke(New)

var iLogger logger.Logger

type Params struct {
	fx.In
	Logger logger.Logger
}

func New(params Params) {
	iLogger = params.Logger
}

func Json(w http.ResponseWriter, status int, data interface{}) {

	reply, err := json.Marshal(data)
	if err != nil {
		if iLogger != nil {
			iLogger.Error(context.TODO(), "err on json.Marshal", zap.Error(err))
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	Raw(w, status, reply)
}

// Raw writes an already encoded JSON body.
func Raw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes the bare `{"error": msg}` shape used by the proxy functions.
func Error(w http.ResponseWriter, status int, msg string) {
	Json(w, status, map[string]string{"error": msg})
}

// PNG writes an image body with the given cache lifetime in seconds.
func PNG(w http.ResponseWriter, body []byte, maxAge int) {
	w.Header().Set("Content-Type", "image/png")
	if maxAge > 0 {
		w.Header().Set("Cache-Control", "public, max-age="+cast.ToString(maxAge))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
