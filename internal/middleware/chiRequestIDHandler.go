package middleware

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
)

// ChiRequestIDHandler attaches the request ID assigned by chi's RequestID
// middleware to the zerolog context of the request, under fieldKey. When a
// headerName is given the ID is also echoed on the response.
//
// This is just an adapter making zerolog aware of the ID chi already set, so
// requests do not end up with two competing IDs. It mimics the
// RequestIDHandler shipped with zerolog's hlog package.
func ChiRequestIDHandler(fieldKey, headerName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id := middleware.GetReqID(ctx)

			if fieldKey != "" {
				log := zerolog.Ctx(ctx)
				log.UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.Str(fieldKey, id)
				})
			}

			if headerName != "" {
				w.Header().Set(headerName, id)
			}
			next.ServeHTTP(w, r)
		})
	}
}
