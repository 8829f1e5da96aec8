package errorhandler

import "strings"

// ContentType identifies one of the response formats the handler can produce.
type ContentType string

const (
	ContentTypeJSON    ContentType = "application/json"
	ContentTypeXML     ContentType = "application/xml"
	ContentTypeTextXML ContentType = "text/xml"
	ContentTypeHTML    ContentType = "text/html"
)

// supportedContentTypes is the closed set of formats the handler produces.
var supportedContentTypes = [...]ContentType{
	ContentTypeJSON,
	ContentTypeXML,
	ContentTypeTextXML,
	ContentTypeHTML,
}

// SelectContentType picks the response format from the raw Accept header
// value. The header is split on commas and each token is compared verbatim
// against the supported set: no whitespace trimming, no wildcard expansion,
// no quality-parameter handling. The first token the client listed that
// matches wins; when nothing matches, text/html is returned.
func SelectContentType(acceptHeader string) ContentType {
	for _, token := range strings.Split(acceptHeader, ",") {
		for _, ct := range supportedContentTypes {
			if token == string(ct) {
				return ct
			}
		}
	}
	return ContentTypeHTML
}
