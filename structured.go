package vdom

import (
	j "github.com/goccy/go-json"

	js "github.com/reoring/govdom/schema"
)

// Structured produces the canonical wire form of the tree:
// {tagName, attributes, children, key?}. attributes and children are always
// present, even when empty; key appears only when set. Element children are
// converted recursively, text children pass through as strings.
func (e *Element) Structured() map[string]any {
	attrs := make(map[string]any, e.attrs.Len())
	e.attrs.Each(func(k, v string) bool {
		attrs[k] = v
		return true
	})
	children := make([]any, 0, len(e.children))
	for _, c := range e.children {
		switch c := c.(type) {
		case Text:
			children = append(children, string(c))
		case *Element:
			children = append(children, c.Structured())
		}
	}
	out := map[string]any{
		"tagName":    e.tag,
		"attributes": attrs,
		"children":   children,
	}
	if e.hasKey {
		out["key"] = e.key
	}
	return out
}

// JSON renders the canonical wire form as JSON bytes.
func (e *Element) JSON() ([]byte, error) {
	return j.Marshal(e.Structured())
}

// FromValue builds an Element from an untrusted structured value. The value is
// validated against the canonical schema first; failure surfaces as
// *SchemaError and no tree is built. Missing attributes default to empty and a
// missing key stays absent.
func FromValue(v any) (*Element, error) {
	canonical := js.VDOM()
	if err := Validate(v, canonical); err != nil {
		return nil, &SchemaError{Schema: canonical, Detail: err}
	}
	return fromValidated(v.(map[string]any))
}

// fromValidated assumes v already passed canonical validation.
func fromValidated(m map[string]any) (*Element, error) {
	opts := make([]Option, 0, 3)
	if raw, ok := m["attributes"].(map[string]any); ok {
		attrs := make(map[string]string, len(raw))
		for k, v := range raw {
			s, ok := v.(string)
			if !ok {
				return nil, Issues{Issue{
					Path:    "/attributes/" + k,
					Code:    CodeInvalidType,
					Message: "attribute values must be strings",
					Params:  map[string]any{"got": typeName(v)},
				}}
			}
			attrs[k] = s
		}
		opts = append(opts, WithAttrs(attrs))
	}
	if raw, ok := m["children"].([]any); ok {
		kids := make([]Child, 0, len(raw))
		for _, c := range raw {
			switch c := c.(type) {
			case string:
				kids = append(kids, Text(c))
			case map[string]any:
				el, err := fromValidated(c)
				if err != nil {
					return nil, err
				}
				kids = append(kids, el)
			default:
				return nil, childError(c)
			}
		}
		opts = append(opts, WithChildList(kids))
	}
	if key, ok := m["key"].(string); ok {
		opts = append(opts, WithKey(key))
	}
	tag, _ := m["tagName"].(string)
	return New(tag, opts...)
}

// ToValue normalizes an element, string, sequence or mapping into the wire
// shape, optionally validating the result against a schema. Mappings must
// carry tagName; attributes and children are defaulted when missing. Values of
// other kinds pass through untouched.
func ToValue(v any, s *js.Schema) (any, error) {
	out, err := toValue(v)
	if err != nil {
		return nil, err
	}
	if s != nil {
		if err := Validate(out, s); err != nil {
			return nil, &SchemaError{Schema: s, Detail: err}
		}
	}
	return out, nil
}

func toValue(v any) (any, error) {
	switch v := v.(type) {
	case *Element:
		return v.Structured(), nil
	case string:
		return v, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			conv, err := toValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case map[string]any:
		if _, ok := v["tagName"]; !ok {
			return nil, Issues{Issue{Path: "/tagName", Code: CodeRequired, Message: "mapping form requires tagName"}}
		}
		out := make(map[string]any, len(v)+2)
		for k, val := range v {
			out[k] = val
		}
		if _, ok := out["attributes"]; !ok {
			out["attributes"] = map[string]any{}
		}
		if _, ok := out["children"]; !ok {
			out["children"] = []any{}
		}
		return out, nil
	default:
		return v, nil
	}
}
