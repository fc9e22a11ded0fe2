package vdom_test

import (
	"errors"
	"testing"

	vdom "github.com/reoring/govdom"
)

// captureDeprecations routes deprecation signals into a slice for the duration
// of the test.
func captureDeprecations(t *testing.T) *[]string {
	t.Helper()
	var got []string
	vdom.SetDeprecationHandler(func(msg string) { got = append(got, msg) })
	t.Cleanup(func() { vdom.SetDeprecationHandler(nil) })
	return &got
}

func TestNewFromValue_SignalsDeprecationAndBuilds(t *testing.T) {
	msgs := captureDeprecations(t)

	el, err := vdom.NewFromValue(map[string]any{"tagName": "p", "children": []any{"hey"}})
	if err != nil {
		t.Fatalf("NewFromValue: %v", err)
	}
	if got := el.HTML(); got != "<p>hey</p>" {
		t.Fatalf("unexpected markup: %q", got)
	}
	if len(*msgs) != 1 {
		t.Fatalf("expected one deprecation signal, got %v", *msgs)
	}
}

func TestNewFromValue_StillValidates(t *testing.T) {
	_ = captureDeprecations(t)

	_, err := vdom.NewFromValue(map[string]any{"children": []any{}})
	var se *vdom.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
}

func TestCreateElement_Alias(t *testing.T) {
	msgs := captureDeprecations(t)

	p := vdom.CreateElement("p")
	el, err := p("hey")
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if got := el.HTML(); got != "<p>hey</p>" {
		t.Fatalf("unexpected markup: %q", got)
	}
	if len(*msgs) != 1 {
		t.Fatalf("expected one deprecation signal, got %v", *msgs)
	}
}

func TestJSONContents_Alias(t *testing.T) {
	msgs := captureDeprecations(t)

	el := vdom.MustNew("p", vdom.WithChildren("hey"))
	legacy, err := el.JSONContents()
	if err != nil {
		t.Fatalf("JSONContents: %v", err)
	}
	direct, err := el.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if string(legacy) != string(direct) {
		t.Fatalf("alias changed the payload: %s vs %s", legacy, direct)
	}
	if len(*msgs) != 1 {
		t.Fatalf("expected one deprecation signal, got %v", *msgs)
	}
}

func TestToJSON_Alias(t *testing.T) {
	msgs := captureDeprecations(t)

	out, err := vdom.ToJSON(map[string]any{"tagName": "div"}, nil)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	if _, ok := out.(map[string]any)["children"]; !ok {
		t.Fatalf("alias skipped normalization: %#v", out)
	}
	if len(*msgs) != 1 {
		t.Fatalf("expected one deprecation signal, got %v", *msgs)
	}
}
