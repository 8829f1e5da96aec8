// Package errorhandler renders unhandled failures into HTTP responses. It
// negotiates the response format from the request's Accept header, renders
// the failure chain in that format, and, when diagnostic detail is hidden
// from clients, writes a plain-text rendering of the full chain to the
// operational log.
package errorhandler

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/toohamster/Slim/internal/common/fault"
)

// genericMessage is the only failure text a client ever sees while detail
// display is off.
const genericMessage = "Slim Application Error"

// Handler is the fallback error handler invoked once per failed request.
// It holds no per-request state; a single instance is safe to share across
// concurrently handled requests.
type Handler struct {
	displayErrorDetails bool
}

// New creates a Handler. The detail-display flag is captured once and stays
// immutable for the handler's lifetime.
func New(displayErrorDetails bool) *Handler {
	return &Handler{displayErrorDetails: displayErrorDetails}
}

// Handle renders err into a 500 response in the format the client asked for.
// When detail display is off, the response body carries only a generic
// message and the full chain goes to the operational log instead.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	f := fault.From(err)
	contentType := SelectContentType(r.Header.Get("Accept"))
	body := renderers[contentType].render(f, h.displayErrorDetails)

	if !h.displayErrorDetails {
		h.writeToErrorLog(r, f)
	}

	w.Header().Set("Content-Type", string(contentType))
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(body))
}

// writeToErrorLog emits the plain-text chain rendering through the request's
// contextual logger. Best effort: a failure to log never reaches the client.
func (h *Handler) writeToErrorLog(r *http.Request, f *fault.Fault) {
	log.Ctx(r.Context()).Error().Msg(textRenderer{}.render(f, true))
}

// RequestHandler is an HTTP handler that reports failures instead of writing
// error responses itself.
type RequestHandler func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts a RequestHandler into an http.HandlerFunc that routes any
// returned error through the handler.
func (h *Handler) Wrap(fn RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Handle(w, r, err)
		}
	}
}
