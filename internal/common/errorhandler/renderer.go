package errorhandler

import "github.com/toohamster/Slim/internal/common/fault"

// renderer produces a complete response body for one content type.
// Implementations are pure: the same fault chain and flag always produce the
// same output, and the chain is only materialized when detail display is on
// (the plain-text renderer materializes it unconditionally for the log).
type renderer interface {
	render(f *fault.Fault, displayErrorDetails bool) string
}

// renderers maps each negotiable content type to its body renderer. Both XML
// MIME types share one renderer.
var renderers = map[ContentType]renderer{
	ContentTypeJSON:    jsonRenderer{},
	ContentTypeXML:     xmlRenderer{},
	ContentTypeTextXML: xmlRenderer{},
	ContentTypeHTML:    htmlRenderer{},
}
