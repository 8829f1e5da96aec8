package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/toohamster/Slim/internal/common/errorhandler"
	"github.com/toohamster/Slim/internal/common/fault"
	"github.com/toohamster/Slim/internal/common/httpx"
)

// Recovery creates middleware that recovers from panics in HTTP handlers and
// routes the recovered value through the fallback error handler, so panics
// get the same negotiated 500 body as returned errors. If the handler already
// started writing the response, nothing more is sent.
func Recovery(h *errorhandler.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := httpx.NewResponseWriter(w)
			defer func() {
				if v := recover(); v != nil {
					if !rw.Written() {
						h.Handle(rw, r, fault.FromPanic(v, debug.Stack()))
					}
				}
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
