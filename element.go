package vdom

import (
	"fmt"

	js "github.com/reoring/govdom/schema"
)

// Element is one node of an immutable markup tree. It holds a tag name, an
// ordered attribute mapping, an ordered child list and an optional identity
// key. Construction validates every child and then freezes the node; a frozen
// tree never changes, so it is safe for concurrent reads.
type Element struct {
	tag      string
	attrs    *Attrs
	children []Child
	key      string
	hasKey   bool
	frozen   bool
}

// Option configures element construction.
type Option func(*builder) error

type builder struct {
	attrs    *Attrs
	children []Child
	key      string
	hasKey   bool
	schema   *js.Schema
}

// WithAttrs sets the attribute mapping from a plain map (lexicographic order).
func WithAttrs(m map[string]string) Option {
	return func(b *builder) error {
		b.attrs = AttrsFromMap(m)
		return nil
	}
}

// WithAttrPairs sets the attribute mapping preserving pair order.
func WithAttrPairs(pairs ...Attr) Option {
	return func(b *builder) error {
		b.attrs = AttrsFromPairs(pairs...)
		return nil
	}
}

// WithChildren appends children. Strings are wrapped as Text; Text and
// *Element pass through. Any other value fails the whole construction with
// ErrInvalidChild before a node is produced.
func WithChildren(kids ...any) Option {
	return func(b *builder) error {
		for _, k := range kids {
			c, err := AsChild(k)
			if err != nil {
				return err
			}
			b.children = append(b.children, c)
		}
		return nil
	}
}

// WithChildList appends already-typed children, copying the slice.
func WithChildList(kids []Child) Option {
	return func(b *builder) error {
		for _, k := range kids {
			if k == nil {
				return childError(nil)
			}
			b.children = append(b.children, k)
		}
		return nil
	}
}

// WithKey sets the identity key.
func WithKey(key string) Option {
	return func(b *builder) error {
		b.key = key
		b.hasKey = true
		return nil
	}
}

// ValidateAgainst validates the structured form of the freshly built node
// before New returns it. Failure surfaces as *SchemaError and no node is
// returned.
func ValidateAgainst(s *js.Schema) Option {
	return func(b *builder) error {
		b.schema = s
		return nil
	}
}

// New builds a frozen Element. The tag must be non-empty; every child must be
// text or an element node. Child slices are copied, so a child list handed to
// one construction call is never aliased by another tree.
func New(tag string, opts ...Option) (*Element, error) {
	if tag == "" {
		return nil, Issues{Issue{Path: "/tagName", Code: CodeRequired, Message: "element tag must not be empty"}}
	}
	b := builder{}
	for _, o := range opts {
		if err := o(&b); err != nil {
			return nil, err
		}
	}
	attrs := b.attrs
	if attrs == nil {
		attrs = NewAttrs()
	} else {
		attrs = attrs.Clone()
	}
	children := make([]Child, len(b.children))
	copy(children, b.children)

	el := &Element{
		tag:      tag,
		attrs:    attrs,
		children: children,
		key:      b.key,
		hasKey:   b.hasKey,
	}
	el.attrs.freeze()
	el.frozen = true

	if b.schema != nil {
		if err := Validate(el.Structured(), b.schema); err != nil {
			return nil, &SchemaError{Schema: b.schema, Detail: err}
		}
	}
	return el, nil
}

// MustNew is New panicking on error. Intended for literals and tests.
func MustNew(tag string, opts ...Option) *Element {
	el, err := New(tag, opts...)
	if err != nil {
		panic(err)
	}
	return el
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Key returns the identity key and whether one is set.
func (e *Element) Key() (string, bool) { return e.key, e.hasKey }

// Attrs returns the attribute mapping. It is frozen; Set on it fails with
// ErrImmutable.
func (e *Element) Attrs() *Attrs { return e.attrs }

// Attr returns a single attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) { return e.attrs.Get(key) }

// Children returns a copy of the child list.
func (e *Element) Children() []Child {
	out := make([]Child, len(e.children))
	copy(out, e.children)
	return out
}

// NumChildren reports the number of children without copying.
func (e *Element) NumChildren() int { return len(e.children) }

// SetAttr attempts to modify an attribute. Elements freeze on construction,
// so this always fails with ErrImmutable; the element is left unchanged.
func (e *Element) SetAttr(key, value string) error {
	if e.frozen {
		return fmt.Errorf("vdom: set %q on <%s>: %w", key, e.tag, ErrImmutable)
	}
	return e.attrs.Set(key, value)
}

// SetKey attempts to replace the identity key. Always fails with ErrImmutable
// on a built element.
func (e *Element) SetKey(string) error {
	return fmt.Errorf("vdom: set key on <%s>: %w", e.tag, ErrImmutable)
}

// Equal reports structural equality: same tag, same attribute content, same
// key, and pairwise-equal child sequences. Attribute order is ignored, as it
// carries no meaning.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.tag != o.tag || e.hasKey != o.hasKey || e.key != o.key {
		return false
	}
	if !e.attrs.equal(o.attrs) {
		return false
	}
	if len(e.children) != len(o.children) {
		return false
	}
	for i, c := range e.children {
		switch a := c.(type) {
		case Text:
			b, ok := o.children[i].(Text)
			if !ok || a != b {
				return false
			}
		case *Element:
			b, ok := o.children[i].(*Element)
			if !ok || !a.Equal(b) {
				return false
			}
		}
	}
	return true
}
