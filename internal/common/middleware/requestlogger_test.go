package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/toohamster/Slim/internal/common/logtrace"
)

func TestRequestLogger(t *testing.T) {
	orig := log.Logger
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = orig }()

	var seenRequestId string
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenRequestId = logtrace.RequestIdFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.NotEmpty(t, seenRequestId)
	assert.Equal(t, seenRequestId, w.Header().Get(RequestIDHeader))

	// One line for the incoming request, one for completion.
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "incoming request")
	assert.Contains(t, buf.String(), "request completed")
	assert.Contains(t, buf.String(), seenRequestId)
}
