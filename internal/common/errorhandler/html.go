package errorhandler

import (
	"fmt"
	"html"
	"strings"

	"github.com/toohamster/Slim/internal/common/fault"
)

// htmlRenderer produces a complete self-contained HTML document.
type htmlRenderer struct{}

func (htmlRenderer) render(f *fault.Fault, displayErrorDetails bool) string {
	var body string
	if displayErrorDetails {
		var b strings.Builder
		b.WriteString("<p>The application could not run because of the following error:</p>")
		b.WriteString("<h2>Details</h2>")
		for i, entry := range f.Chain() {
			if i > 0 {
				b.WriteString("<h2>Previous error</h2>")
			}
			b.WriteString(renderHTMLEntry(entry))
		}
		body = b.String()
	} else {
		body = "<p>A website error has occurred. Sorry for the temporary inconvenience.</p>"
	}
	return fmt.Sprintf("<html><head><meta http-equiv='Content-Type' content='text/html; charset=utf-8'>"+
		"<title>%s</title><style>body{margin:0;padding:30px;font:12px/1.5 Helvetica,Arial,Verdana,sans-serif;}"+
		"h1{margin:0;font-size:48px;font-weight:normal;line-height:48px;}strong{display:inline-block;width:65px;}"+
		"</style></head><body><h1>%s</h1>%s</body></html>",
		genericMessage, genericMessage, body)
}

// renderHTMLEntry renders one chain entry as a details block. Fields with no
// usable value are left out.
func renderHTMLEntry(f *fault.Fault) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<div><strong>Type:</strong> %s</div>", f.Kind)
	if f.CodeSet() {
		fmt.Fprintf(&b, "<div><strong>Code:</strong> %s</div>", f.Code)
	}
	if f.Message != "" {
		fmt.Fprintf(&b, "<div><strong>Message:</strong> %s</div>", html.EscapeString(f.Message))
	}
	if f.File != "" {
		fmt.Fprintf(&b, "<div><strong>File:</strong> %s</div>", f.File)
	}
	if f.Line != 0 {
		fmt.Fprintf(&b, "<div><strong>Line:</strong> %d</div>", f.Line)
	}
	if len(f.Trace) > 0 {
		fmt.Fprintf(&b, "<h2>Trace</h2><pre>%s</pre>", html.EscapeString(strings.Join(f.Trace, "\n")))
	}
	return b.String()
}
