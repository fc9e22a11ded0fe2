package vdom_test

import (
	"errors"
	"sync"
	"testing"

	vdom "github.com/reoring/govdom"
)

func TestNew_DefaultsAreMaterialized(t *testing.T) {
	el, err := vdom.New("div")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if el.Attrs() == nil || el.Attrs().Len() != 0 {
		t.Fatalf("expected empty attrs, got %v", el.Attrs())
	}
	if el.Children() == nil || len(el.Children()) != 0 {
		t.Fatalf("expected empty children, got %v", el.Children())
	}
	if _, ok := el.Key(); ok {
		t.Fatalf("expected no key")
	}
}

func TestNew_EmptyTagFails(t *testing.T) {
	_, err := vdom.New("")
	if err == nil {
		t.Fatalf("expected error for empty tag")
	}
	iss, ok := vdom.AsIssues(err)
	if !ok || iss[0].Path != "/tagName" {
		t.Fatalf("expected issue at /tagName, got %v", err)
	}
}

func TestNew_WrapsStringsAsText(t *testing.T) {
	el, err := vdom.New("p", vdom.WithChildren("hey"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	kids := el.Children()
	if len(kids) != 1 {
		t.Fatalf("expected one child, got %d", len(kids))
	}
	txt, ok := kids[0].(vdom.Text)
	if !ok || txt != "hey" {
		t.Fatalf("expected Text child %q, got %#v", "hey", kids[0])
	}
}

func TestNew_InvalidChildFails(t *testing.T) {
	_, err := vdom.New("div", vdom.WithChildren(42))
	if err == nil {
		t.Fatalf("expected child-type error")
	}
	if !errors.Is(err, vdom.ErrInvalidChild) {
		t.Fatalf("expected ErrInvalidChild, got %v", err)
	}

	var nilEl *vdom.Element
	if _, err := vdom.New("div", vdom.WithChildren(nilEl)); !errors.Is(err, vdom.ErrInvalidChild) {
		t.Fatalf("expected ErrInvalidChild for nil element, got %v", err)
	}
}

func TestElement_FrozenAfterConstruction(t *testing.T) {
	el := vdom.MustNew("div", vdom.WithAttrs(map[string]string{"class": "card"}))

	if err := el.SetAttr("class", "list"); !errors.Is(err, vdom.ErrImmutable) {
		t.Fatalf("expected ErrImmutable from SetAttr, got %v", err)
	}
	if err := el.SetKey("k"); !errors.Is(err, vdom.ErrImmutable) {
		t.Fatalf("expected ErrImmutable from SetKey, got %v", err)
	}
	if err := el.Attrs().Set("id", "x"); !errors.Is(err, vdom.ErrImmutable) {
		t.Fatalf("expected ErrImmutable from Attrs().Set, got %v", err)
	}

	// Observable state is unchanged after the failed mutations.
	if v, _ := el.Attr("class"); v != "card" {
		t.Fatalf("attribute changed after failed mutation: %q", v)
	}
	if el.Attrs().Len() != 1 {
		t.Fatalf("attribute added after failed mutation")
	}
}

func TestNew_CopiesChildSlice(t *testing.T) {
	kids := []vdom.Child{vdom.Text("a")}
	el, err := vdom.New("div", vdom.WithChildList(kids))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	kids[0] = vdom.Text("mutated")
	if got := el.Children()[0].(vdom.Text); got != "a" {
		t.Fatalf("element aliased the caller's child slice: %q", got)
	}
}

func TestElement_Equal(t *testing.T) {
	a := vdom.MustNew("div",
		vdom.WithAttrPairs(vdom.Attr{Key: "a", Value: "1"}, vdom.Attr{Key: "b", Value: "2"}),
		vdom.WithChildren("x", vdom.MustNew("p", vdom.WithChildren("y"))),
		vdom.WithKey("k"),
	)
	b := vdom.MustNew("div",
		// Same mapping, different insertion order: still equal.
		vdom.WithAttrPairs(vdom.Attr{Key: "b", Value: "2"}, vdom.Attr{Key: "a", Value: "1"}),
		vdom.WithChildren("x", vdom.MustNew("p", vdom.WithChildren("y"))),
		vdom.WithKey("k"),
	)
	if !a.Equal(b) {
		t.Fatalf("expected structural equality")
	}

	c := vdom.MustNew("div", vdom.WithChildren("x"))
	if a.Equal(c) {
		t.Fatalf("expected inequality")
	}
}

func TestElement_ConcurrentReads(t *testing.T) {
	el := vdom.MustNew("ul",
		vdom.WithChildren(
			vdom.MustNew("li", vdom.WithChildren("one")),
			vdom.MustNew("li", vdom.WithChildren("two")),
		),
	)
	want := el.HTML()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := el.HTML(); got != want {
				t.Errorf("concurrent HTML mismatch: %q", got)
			}
			_ = el.Structured()
			_ = el.Children()
		}()
	}
	wg.Wait()
}
