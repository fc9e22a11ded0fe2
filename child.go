package vdom

// Child is one member of an element's ordered child list. The set of variants
// is closed: Text and *Element.
type Child interface {
	child()
}

// Text is a raw text child. It is escaped on HTML serialization and passes
// through the structured form as a plain string.
type Text string

func (Text) child() {}

func (*Element) child() {}

// AsChild converts a construction argument into a Child. Strings are wrapped
// as Text; Text and non-nil *Element pass through. Anything else fails with
// ErrInvalidChild.
func AsChild(v any) (Child, error) {
	switch c := v.(type) {
	case string:
		return Text(c), nil
	case Text:
		return c, nil
	case *Element:
		if c == nil {
			return nil, childError(v)
		}
		return c, nil
	default:
		return nil, childError(v)
	}
}

func childError(v any) error {
	iss := Issues{Issue{
		Path:    "/children",
		Code:    CodeInvalidChild,
		Message: ErrInvalidChild.Error(),
		Cause:   ErrInvalidChild,
		Params:  map[string]any{"got": typeName(v)},
	}}
	return iss
}
