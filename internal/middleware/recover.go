package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"zookeepr-api/internal/platform/logger"
)

// Recover convierte un panic en 500 y lo deja en el log con el stack.
// Reemplaza a chi/middleware.Recoverer para que el panic salga por nuestro logger.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
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
				log.Error("panic recovered", map[string]any{
					"panic":      fmt.Sprint(rec),
					"request_id": GetRequestID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				http.Error(w, "internal error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
