package vdom

import "strings"

// htmlEscaper rewrites the four characters that can break out of markup.
// Values land in double quotes, so the double quote must be escaped; the
// apostrophe never delimits emitted attributes and is left alone.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string { return htmlEscaper.Replace(s) }

// HTML renders the tree as escaped markup text. Output is deterministic:
// attributes appear in mapping order and every text fragment, tag name,
// attribute key and attribute value is escaped. Childless elements still emit
// an explicit closing tag; no self-closing form is ever produced.
func (e *Element) HTML() string {
	b := &strings.Builder{}
	e.writeHTML(b)
	return b.String()
}

func (e *Element) writeHTML(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(escape(e.tag))
	e.attrs.Each(func(k, v string) bool {
		b.WriteByte(' ')
		b.WriteString(escape(k))
		b.WriteString(`="`)
		b.WriteString(escape(v))
		b.WriteByte('"')
		return true
	})
	b.WriteByte('>')
	for _, c := range e.children {
		switch c := c.(type) {
		case Text:
			b.WriteString(escape(string(c)))
		case *Element:
			c.writeHTML(b)
		}
	}
	b.WriteString("</")
	b.WriteString(escape(e.tag))
	b.WriteByte('>')
}
