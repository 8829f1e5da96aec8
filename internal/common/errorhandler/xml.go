package errorhandler

import (
	"strconv"
	"strings"

	"github.com/toohamster/Slim/internal/common/fault"
)

// xmlRenderer hand-builds the XML document rather than going through a
// serializer, matching the legacy wire format byte for byte.
type xmlRenderer struct{}

func (xmlRenderer) render(f *fault.Fault, displayErrorDetails bool) string {
	var b strings.Builder
	b.WriteString("<error>\n  <message>" + genericMessage + "</message>\n")
	if displayErrorDetails {
		for _, entry := range f.Chain() {
			b.WriteString("  <error>\n")
			b.WriteString("    <type>" + entry.Kind + "</type>\n")
			if entry.CodeSet() {
				b.WriteString("    <code>" + entry.Code + "</code>\n")
			}
			b.WriteString("    <message>" + cdata(entry.Message) + "</message>\n")
			b.WriteString("    <file>" + entry.File + "</file>\n")
			b.WriteString("    <line>" + strconv.Itoa(entry.Line) + "</line>\n")
			b.WriteString("    <trace>" + cdata(strings.Join(entry.Trace, "\n")) + "</trace>\n")
			b.WriteString("  </error>\n")
		}
	}
	b.WriteString("</error>")
	return b.String()
}

// cdata wraps text in a CDATA section. A literal "]]>" inside the text is
// split across adjacent sections so the document stays well-formed.
func cdata(s string) string {
	return "<![CDATA[" + strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>") + "]]>"
}
