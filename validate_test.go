package vdom_test

import (
	"testing"

	vdom "github.com/reoring/govdom"
	js "github.com/reoring/govdom/schema"
)

func issueWith(t *testing.T, err error, path, code string) {
	t.Helper()
	iss, ok := vdom.AsIssues(err)
	if !ok {
		t.Fatalf("expected issues, got %v", err)
	}
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return
		}
	}
	t.Fatalf("no %s issue at %s in %v", code, path, iss)
}

func TestValidate_NilSchemaAccepts(t *testing.T) {
	if err := vdom.Validate(map[string]any{"anything": true}, nil); err != nil {
		t.Fatalf("nil schema must accept: %v", err)
	}
}

func TestValidate_TypeMismatchPaths(t *testing.T) {
	s := js.VDOM()

	err := vdom.Validate(map[string]any{"tagName": 1.0}, s)
	issueWith(t, err, "/tagName", vdom.CodeInvalidType)

	err = vdom.Validate(map[string]any{"tagName": "div", "children": "nope"}, s)
	issueWith(t, err, "/children", vdom.CodeInvalidType)

	err = vdom.Validate("not an object", s)
	issueWith(t, err, "/", vdom.CodeInvalidType)
}

func TestValidate_NestedChildPaths(t *testing.T) {
	err := vdom.Validate(map[string]any{
		"tagName": "div",
		"children": []any{
			"fine",
			map[string]any{"children": []any{}},
		},
	}, js.VDOM())
	// The second child matches neither the string nor the node variant.
	issueWith(t, err, "/children/1", vdom.CodeAnyOfMismatch)
}

func TestValidate_MinLength(t *testing.T) {
	err := vdom.Validate(map[string]any{"tagName": ""}, js.VDOM())
	issueWith(t, err, "/tagName", vdom.CodeTooShort)
}

func TestValidate_AdditionalPropertySchema(t *testing.T) {
	err := vdom.Validate(map[string]any{
		"tagName":    "div",
		"attributes": map[string]any{"class": "ok", "width": 100.0},
	}, js.VDOM())
	issueWith(t, err, "/attributes/width", vdom.CodeInvalidType)
}

func TestValidate_AdditionalForbidden(t *testing.T) {
	s := &js.Schema{
		Type:       "object",
		Properties: map[string]*js.Schema{"name": {Type: "string"}},
		Additional: &js.Additional{Forbid: true},
	}
	err := vdom.Validate(map[string]any{"name": "x", "extra": "y"}, s)
	issueWith(t, err, "/extra", vdom.CodeUnknownKey)
}

func TestValidate_BadRef(t *testing.T) {
	s := &js.Schema{Ref: "#/definitions/missing"}
	err := vdom.Validate("x", s)
	issueWith(t, err, "/", vdom.CodeBadRef)
}

func TestValidate_PointerEscaping(t *testing.T) {
	s := &js.Schema{
		Type:       "object",
		Properties: map[string]*js.Schema{"a/b": {Type: "string"}},
	}
	err := vdom.Validate(map[string]any{"a/b": 1.0}, s)
	issueWith(t, err, "/a~1b", vdom.CodeInvalidType)
}

func TestValidate_AcceptsCanonicalDocument(t *testing.T) {
	v := map[string]any{
		"tagName":    "div",
		"attributes": map[string]any{"class": "card"},
		"key":        "k",
		"children": []any{
			"text",
			map[string]any{"tagName": "p", "children": []any{"deep"}},
		},
	}
	if err := vdom.Validate(v, js.VDOM()); err != nil {
		t.Fatalf("canonical document rejected: %v", err)
	}
}
