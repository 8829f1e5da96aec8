package errorhandler

import (
	encjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toohamster/Slim/internal/common/fault"
)

// testChain builds the two-entry chain shared across the renderer tests:
// a root failure with a usable code and a previous cause without one.
func testChain() *fault.Fault {
	return &fault.Fault{
		Kind:    "RuntimeFault",
		Code:    "42",
		Message: "db down",
		File:    "/srv/app/db.go",
		Line:    87,
		Trace:   []string{"main.connect", "main.run"},
		Previous: &fault.Fault{
			Kind:    "IOFault",
			Message: "connection refused",
			File:    "/srv/app/net.go",
			Line:    12,
			Trace:   []string{"net.dial"},
		},
	}
}

func TestJSONRenderer(t *testing.T) {
	t.Run("detail hidden", func(t *testing.T) {
		out := jsonRenderer{}.render(testChain(), false)
		assert.Equal(t, "{\n    \"message\": \"Slim Application Error\"\n}", out)
	})

	t.Run("detail shown round trips", func(t *testing.T) {
		out := jsonRenderer{}.render(testChain(), true)

		var body struct {
			Message string `json:"message"`
			Error   []struct {
				Type    string   `json:"type"`
				Code    string   `json:"code"`
				Message string   `json:"message"`
				File    string   `json:"file"`
				Line    int      `json:"line"`
				Trace   []string `json:"trace"`
			} `json:"error"`
		}
		require.NoError(t, encjson.Unmarshal([]byte(out), &body))

		assert.Equal(t, "Slim Application Error", body.Message)
		require.Len(t, body.Error, 2)

		root := body.Error[0]
		assert.Equal(t, "RuntimeFault", root.Type)
		assert.Equal(t, "42", root.Code)
		assert.Equal(t, "db down", root.Message)
		assert.Equal(t, "/srv/app/db.go", root.File)
		assert.Equal(t, 87, root.Line)
		assert.Equal(t, []string{"main.connect", "main.run"}, root.Trace)

		prev := body.Error[1]
		assert.Equal(t, "IOFault", prev.Type)
		assert.Equal(t, "connection refused", prev.Message)
	})

	t.Run("code field absent when falsy", func(t *testing.T) {
		out := jsonRenderer{}.render(testChain(), true)

		var body struct {
			Error []map[string]any `json:"error"`
		}
		require.NoError(t, encjson.Unmarshal([]byte(out), &body))
		require.Len(t, body.Error, 2)

		_, hasCode := body.Error[0]["code"]
		assert.True(t, hasCode)
		_, hasCode = body.Error[1]["code"]
		assert.False(t, hasCode)
	})

	t.Run("zero code is falsy", func(t *testing.T) {
		f := &fault.Fault{Kind: "RuntimeFault", Code: "0", Message: "db down"}
		out := jsonRenderer{}.render(f, true)
		assert.NotContains(t, out, "\"code\"")
	})
}
