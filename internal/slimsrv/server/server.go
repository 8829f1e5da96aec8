// Package server wires the HTTP composition: the chi router, the middleware
// stack, and the fallback error handler that renders handler errors and
// recovered panics.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/toohamster/Slim/internal/common/errorhandler"
	"github.com/toohamster/Slim/internal/common/httpx"
	commonmiddleware "github.com/toohamster/Slim/internal/common/middleware"
	"github.com/toohamster/Slim/internal/slimsrv/config"
)

// ServerVersion is the release version of the slim server.
const ServerVersion = "0.1.0"

// ApiVersion is the API version served by this binary.
const ApiVersion = "v1"

// SlimServer composes the router and the fallback error handler.
type SlimServer struct {
	Router       *chi.Mux
	ErrorHandler *errorhandler.Handler
}

// CreateNewServer builds a server from the loaded configuration. The
// detail-display flag is captured once here; it is immutable afterwards.
func CreateNewServer() (*SlimServer, error) {
	s := &SlimServer{
		Router:       chi.NewRouter(),
		ErrorHandler: errorhandler.New(config.Config().DisplayErrorDetails),
	}
	return s, nil
}

// MountHandlers installs the middleware stack and the built-in routes.
func (s *SlimServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.Recovery(s.ErrorHandler))
	s.Router.Use(commonmiddleware.SetTimeout(config.Config().GetRequestTimeoutOrDefault()))
	if config.Config().HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Get("/version", s.getVersion)
	s.Router.Get("/ready", s.getReadiness)
}

// Handle registers an error-returning handler. Failures it reports are
// rendered by the fallback error handler.
func (s *SlimServer) Handle(method, pattern string, fn errorhandler.RequestHandler) {
	s.Router.Method(method, pattern, s.ErrorHandler.Wrap(fn))
}

// GetVersionRsp is the version endpoint payload.
type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *SlimServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "Slim Server: " + ServerVersion,
		ApiVersion:    ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

// getReadiness handles health check requests.
// Returns readiness status for load balancer and monitoring systems.
func (s *SlimServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("Readiness check")
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// HandleCORS provides CORS middleware for cross-origin requests.
// Configures allowed origins, methods, headers, and credentials handling.
func (s *SlimServer) HandleCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Accept-Encoding"},
		ExposedHeaders:   []string{"Link", "Location", "X-Slim-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}
