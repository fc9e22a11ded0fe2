package vdom

import (
	"strconv"
	"strings"

	"github.com/reoring/govdom/i18n"
	js "github.com/reoring/govdom/schema"
)

// Validate checks a decoded structured value against a schema and returns
// Issues describing every mismatch, or nil when the value conforms. The value
// is expected in JSON shape: map[string]any, []any, string, bool, float64,
// json.Number, nil.
func Validate(v any, s *js.Schema) error {
	if s == nil {
		return nil
	}
	va := validator{root: s}
	if iss := va.walk(nil, v, s); len(iss) > 0 {
		return iss
	}
	return nil
}

type validator struct {
	root *js.Schema
}

func (va validator) walk(path []string, v any, s *js.Schema) Issues {
	s, iss := va.deref(path, s)
	if iss != nil {
		return iss
	}
	if len(s.AnyOf) > 0 {
		return va.walkAnyOf(path, v, s.AnyOf)
	}
	switch s.Type {
	case "object":
		return va.walkObject(path, v, s)
	case "array":
		return va.walkArray(path, v, s)
	case "string":
		return va.walkString(path, v, s)
	case "":
		return nil
	default:
		return Issues{Issue{
			Path:    pointer(path),
			Code:    CodeBadRef,
			Message: "unsupported schema type " + s.Type,
		}}
	}
}

// deref follows $ref chains against the document root. Depth is bounded so a
// self-referential chain cannot loop.
func (va validator) deref(path []string, s *js.Schema) (*js.Schema, Issues) {
	const maxDepth = 16
	for i := 0; s.Ref != ""; i++ {
		if i == maxDepth {
			return nil, Issues{Issue{Path: pointer(path), Code: CodeBadRef, Message: "schema reference chain too deep"}}
		}
		next, err := js.Resolve(va.root, s.Ref)
		if err != nil {
			return nil, Issues{Issue{Path: pointer(path), Code: CodeBadRef, Message: err.Error(), Cause: err}}
		}
		s = next
	}
	return s, nil
}

func (va validator) walkAnyOf(path []string, v any, alts []*js.Schema) Issues {
	for _, alt := range alts {
		if len(va.walk(path, v, alt)) == 0 {
			return nil
		}
	}
	return Issues{Issue{
		Path:    pointer(path),
		Code:    CodeAnyOfMismatch,
		Message: i18n.T(CodeAnyOfMismatch, nil),
		Params:  map[string]any{"variants": len(alts), "got": typeName(v)},
	}}
}

func (va validator) walkObject(path []string, v any, s *js.Schema) Issues {
	m, ok := v.(map[string]any)
	if !ok {
		return va.typeIssue(path, "object", v)
	}
	var iss Issues
	for _, req := range s.Required {
		if _, ok := m[req]; !ok {
			iss = AppendIssues(iss, Issue{
				Path:    pointer(append(path, req)),
				Code:    CodeRequired,
				Message: i18n.T(CodeRequired, nil),
			})
		}
	}
	for name, sub := range s.Properties {
		pv, ok := m[name]
		if !ok {
			continue
		}
		iss = append(iss, va.walk(append(path, name), pv, sub)...)
	}
	if s.Additional != nil {
		for name, pv := range m {
			if _, listed := s.Properties[name]; listed {
				continue
			}
			if s.Additional.Forbid {
				iss = AppendIssues(iss, Issue{
					Path:    pointer(append(path, name)),
					Code:    CodeUnknownKey,
					Message: i18n.T(CodeUnknownKey, nil),
				})
				continue
			}
			if s.Additional.Schema != nil {
				iss = append(iss, va.walk(append(path, name), pv, s.Additional.Schema)...)
			}
		}
	}
	return iss
}

func (va validator) walkArray(path []string, v any, s *js.Schema) Issues {
	arr, ok := v.([]any)
	if !ok {
		return va.typeIssue(path, "array", v)
	}
	if s.Items == nil {
		return nil
	}
	var iss Issues
	for i, item := range arr {
		iss = append(iss, va.walk(append(path, strconv.Itoa(i)), item, s.Items)...)
	}
	return iss
}

func (va validator) walkString(path []string, v any, s *js.Schema) Issues {
	str, ok := v.(string)
	if !ok {
		return va.typeIssue(path, "string", v)
	}
	if s.MinLength != nil && len(str) < *s.MinLength {
		return Issues{Issue{
			Path:    pointer(path),
			Code:    CodeTooShort,
			Message: i18n.T(CodeTooShort, nil),
			Params:  map[string]any{"minLength": *s.MinLength, "got": len(str)},
		}}
	}
	return nil
}

func (va validator) typeIssue(path []string, want string, v any) Issues {
	return Issues{Issue{
		Path:    pointer(path),
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": want}),
		Params:  map[string]any{"expected": want, "got": typeName(v)},
	}}
}

// pointer renders a JSON Pointer from path segments, escaping per RFC 6901.
func pointer(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, seg := range path {
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

