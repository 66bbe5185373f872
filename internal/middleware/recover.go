package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"pet-store-inventory/internal/platform/apperr"
	"pet-store-inventory/internal/platform/logger"
	"pet-store-inventory/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: loguea el panic con zap y responde
// con el mismo body de error 500 que el resto de la API.
func Recover(log *zap.Logger) func(http.Handler) http.Handler {
	log = logger.OrNop(log)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Stack("stack"),
				)
				respond.Error(w, apperr.Server("internal error", nil))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
