package tagmerge

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans user supplied content before it is merged into outbound
// HTML. It is safe for concurrent use.
type Sanitizer struct {
	html *bluemonday.Policy
	text *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer that keeps basic formatting markup in
// HTML and strips all markup in text.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		html: bluemonday.UGCPolicy(),
		text: bluemonday.StrictPolicy(),
	}
}

// HTML removes scripts, event handlers and other unsafe markup.
func (s *Sanitizer) HTML(in string) string {
	return s.html.Sanitize(in)
}

// Text removes all markup and returns plain text. The result is not safe
// for HTML.
func (s *Sanitizer) Text(in string) string {
	return html.UnescapeString(s.text.Sanitize(in))
}
