package vdom

// Factory builds elements for a fixed tag from loosely typed arguments,
// mirroring hyperscript-style construction. Each argument is one of:
//
//   - string, Text, *Element: a positional child
//   - []any, []Child, []*Element, []string: a run of positional children
//   - Attr, map[string]string, *Attrs: attribute data, merged in order
//   - ChildrenArg (from Children): overrides positional children entirely
//   - AttributesArg (from Attributes): used verbatim as the attribute mapping
//
// Anything else fails with ErrInvalidChild.
type Factory func(args ...any) (*Element, error)

// Must calls the factory and panics on error. Intended for literals and tests.
func (f Factory) Must(args ...any) *Element {
	el, err := f(args...)
	if err != nil {
		panic(err)
	}
	return el
}

// ComponentOption configures Component.
type ComponentOption func(*componentConfig)

type componentConfig struct {
	allowChildren bool
}

// NoChildren marks the component as childless (void elements such as img or
// br). Passing children to such a factory fails with ChildrenForbiddenError.
func NoChildren() ComponentOption {
	return func(c *componentConfig) { c.allowChildren = false }
}

// ChildrenArg is the explicit children override produced by Children.
type ChildrenArg struct{ kids []any }

// Children marks an explicit child list. When present among factory arguments
// it replaces all positional children.
func Children(kids ...any) ChildrenArg { return ChildrenArg{kids: kids} }

// AttributesArg is the explicit attribute mapping produced by Attributes.
type AttributesArg struct{ attrs map[string]string }

// Attributes marks an explicit attribute mapping, used verbatim instead of
// collecting attribute arguments.
func Attributes(m map[string]string) AttributesArg { return AttributesArg{attrs: m} }

// Component returns a Factory for the given tag. Argument resolution follows
// fixed rules, applied in order:
//
//  1. An explicit Children(...) argument overrides positional children.
//  2. Otherwise a single positional argument that is itself a sequence is
//     flattened into the child list, so callers may pass one list instead of
//     spreading it.
//  3. An explicit Attributes(...) argument is the attribute mapping verbatim;
//     otherwise Attr/map arguments merge to form it.
//  4. A NoChildren component that resolved a non-empty child list fails with
//     ChildrenForbiddenError.
//  5. The element is built via New; no schema applies at this layer.
func Component(tag string, opts ...ComponentOption) Factory {
	cfg := componentConfig{allowChildren: true}
	for _, o := range opts {
		o(&cfg)
	}
	return func(args ...any) (*Element, error) {
		var (
			positional []any
			override   *ChildrenArg
			verbatim   *AttributesArg
			pairs      []Attr
		)
		for _, arg := range args {
			switch a := arg.(type) {
			case ChildrenArg:
				override = &a
			case AttributesArg:
				verbatim = &a
			case Attr:
				pairs = append(pairs, a)
			case map[string]string:
				AttrsFromMap(a).Each(func(k, v string) bool {
					pairs = append(pairs, Attr{Key: k, Value: v})
					return true
				})
			case *Attrs:
				a.Each(func(k, v string) bool {
					pairs = append(pairs, Attr{Key: k, Value: v})
					return true
				})
			default:
				positional = append(positional, arg)
			}
		}

		var kids []any
		switch {
		case override != nil:
			kids = override.kids
		case len(positional) == 1:
			if seq, ok := asSequence(positional[0]); ok {
				kids = seq
			} else {
				kids = positional
			}
		default:
			kids = positional
		}

		if !cfg.allowChildren && len(kids) > 0 {
			return nil, &ChildrenForbiddenError{Tag: tag}
		}

		elOpts := []Option{WithChildren(kids...)}
		if verbatim != nil {
			elOpts = append(elOpts, WithAttrs(verbatim.attrs))
		} else if len(pairs) > 0 {
			elOpts = append(elOpts, WithAttrPairs(pairs...))
		}
		return New(tag, elOpts...)
	}
}

// asSequence reports whether v is one of the recognized child sequences and
// widens it to []any.
func asSequence(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []Child:
		out := make([]any, len(seq))
		for i, c := range seq {
			out[i] = c
		}
		return out, true
	case []*Element:
		out := make([]any, len(seq))
		for i, c := range seq {
			out[i] = c
		}
		return out, true
	case []string:
		out := make([]any, len(seq))
		for i, c := range seq {
			out[i] = c
		}
		return out, true
	case []Text:
		out := make([]any, len(seq))
		for i, c := range seq {
			out[i] = c
		}
		return out, true
	default:
		return nil, false
	}
}

// H builds an element in hyperscript style: tag first, then factory-style
// arguments.
//
//	el, err := vdom.H("div", []any{vdom.Must(vdom.H("p", "hey"))})
func H(tag string, args ...any) (*Element, error) {
	return Component(tag)(args...)
}

// Must panics when err is non-nil, otherwise returns el. Sugar for nesting H
// calls.
func Must(el *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return el
}
