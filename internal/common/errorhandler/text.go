package errorhandler

import (
	"fmt"
	"html"
	"strings"

	"github.com/toohamster/Slim/internal/common/fault"
)

// textRenderer produces the plain-text rendering used for the operational
// log. It always materializes the full chain; the detail-display flag only
// governs the client-facing formats.
type textRenderer struct{}

func (textRenderer) render(f *fault.Fault, _ bool) string {
	var b strings.Builder
	for i, entry := range f.Chain() {
		if i > 0 {
			b.WriteString("Previous error:\n")
		}
		writeTextEntry(&b, entry)
	}
	b.WriteString("\nView in rendered output by enabling the \"displayErrorDetails\" setting.\n")
	return b.String()
}

// writeTextEntry writes one chain entry as Type/Code/Message/File/Line/Trace
// lines, leaving out fields with no usable value.
func writeTextEntry(b *strings.Builder, f *fault.Fault) {
	fmt.Fprintf(b, "Type: %s\n", f.Kind)
	if f.CodeSet() {
		fmt.Fprintf(b, "Code: %s\n", f.Code)
	}
	if f.Message != "" {
		fmt.Fprintf(b, "Message: %s\n", html.EscapeString(f.Message))
	}
	if f.File != "" {
		fmt.Fprintf(b, "File: %s\n", f.File)
	}
	if f.Line != 0 {
		fmt.Fprintf(b, "Line: %d\n", f.Line)
	}
	if len(f.Trace) > 0 {
		fmt.Fprintf(b, "Trace: %s\n", strings.Join(f.Trace, "\n"))
	}
}
