package errorhandler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toohamster/Slim/internal/common/fault"
)

// newTestRequest builds a request whose contextual logger writes JSON events
// to logBuf, one line per event, so tests can count operational log writes.
func newTestRequest(accept string, logBuf *bytes.Buffer) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/boom", nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	logger := zerolog.New(logBuf)
	return r.WithContext(logger.WithContext(r.Context()))
}

func logLines(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), "\n")
}

func TestHandleDetailOff(t *testing.T) {
	h := New(false)
	var buf bytes.Buffer
	r := newTestRequest("application/json, text/html", &buf)
	w := httptest.NewRecorder()

	h.Handle(w, r, &fault.Fault{Kind: "RuntimeFault", Message: "db down", Code: "0"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "{\n    \"message\": \"Slim Application Error\"\n}", w.Body.String())

	// Exactly one operational log write carrying the suppressed detail.
	require.Equal(t, 1, logLines(&buf))
	assert.Contains(t, buf.String(), "Type: RuntimeFault")
	assert.Contains(t, buf.String(), "Message: db down")
	assert.NotContains(t, buf.String(), "Code:")
}

func TestHandleDetailOn(t *testing.T) {
	h := New(true)
	var buf bytes.Buffer
	r := newTestRequest("", &buf)
	w := httptest.NewRecorder()

	h.Handle(w, r, testChain())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(w.Body.String(), "<strong>Type:</strong>"))
	assert.Equal(t, 1, strings.Count(w.Body.String(), "<h2>Previous error</h2>"))
	assert.Zero(t, logLines(&buf))
}

func TestHandleLogCarriesChain(t *testing.T) {
	h := New(false)
	var buf bytes.Buffer
	r := newTestRequest("text/html", &buf)
	w := httptest.NewRecorder()

	h.Handle(w, r, testChain())

	require.Equal(t, 1, logLines(&buf))
	assert.Contains(t, buf.String(), "Type: RuntimeFault")
	assert.Contains(t, buf.String(), "Previous error:")
	assert.Contains(t, buf.String(), "Type: IOFault")
	assert.Contains(t, buf.String(), "File: /srv/app/db.go")
	assert.Contains(t, buf.String(), "Line: 87")

	// Nothing from the chain reaches the client.
	assert.NotContains(t, w.Body.String(), "db down")
	assert.NotContains(t, w.Body.String(), "/srv/app/db.go")
}

func TestHandleAdaptsGoErrors(t *testing.T) {
	h := New(true)
	var buf bytes.Buffer
	r := newTestRequest("application/json", &buf)
	w := httptest.NewRecorder()

	h.Handle(w, r, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), assert.AnError.Error())
}

func TestWrap(t *testing.T) {
	t.Run("error routed to handler", func(t *testing.T) {
		h := New(false)
		var buf bytes.Buffer
		r := newTestRequest("application/xml", &buf)
		w := httptest.NewRecorder()

		h.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			return &fault.Fault{Kind: "RuntimeFault", Message: "db down"}
		})(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
		assert.Equal(t, "<error>\n  <message>Slim Application Error</message>\n</error>", w.Body.String())
		assert.Equal(t, 1, logLines(&buf))
	})

	t.Run("nil error passes through", func(t *testing.T) {
		h := New(false)
		var buf bytes.Buffer
		r := newTestRequest("", &buf)
		w := httptest.NewRecorder()

		h.Wrap(func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusNoContent)
			return nil
		})(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Zero(t, logLines(&buf))
	})
}
