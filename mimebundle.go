package vdom

// Representation names offered to display frontends.
const (
	MediaTypeVDOM  = "application/vdom.v1+json"
	MediaTypePlain = "text/plain"
)

// MIMEBundle returns the display bundle for a tree: the canonical structured
// form under MediaTypeVDOM and the escaped markup text under MediaTypePlain.
// The consuming frontend picks which representation to render.
func (e *Element) MIMEBundle() map[string]any {
	return map[string]any{
		MediaTypeVDOM:  e.Structured(),
		MediaTypePlain: e.HTML(),
	}
}
