package helpers_test

import (
	"errors"
	"testing"

	vdom "github.com/reoring/govdom"
	"github.com/reoring/govdom/helpers"
)

func TestHelpers_Compose(t *testing.T) {
	el := helpers.Div(
		helpers.H1("Hello"),
		helpers.P("Now you can ", helpers.B("compose"), " trees."),
	)
	want := "<div><h1>Hello</h1><p>Now you can <b>compose</b> trees.</p></div>"
	if got := el.HTML(); got != want {
		t.Fatalf("unexpected markup:\n got %q\nwant %q", got, want)
	}
}

func TestHelpers_ListFromSlice(t *testing.T) {
	items := []*vdom.Element{helpers.Li("one"), helpers.Li("two")}
	el := helpers.Ul(items)
	if got := el.HTML(); got != "<ul><li>one</li><li>two</li></ul>" {
		t.Fatalf("unexpected markup: %q", got)
	}
}

func TestHelpers_VoidElements(t *testing.T) {
	el := helpers.Img(vdom.Attr{Key: "src", Value: "a.png"})
	if got := el.HTML(); got != `<img src="a.png"></img>` {
		t.Fatalf("unexpected markup: %q", got)
	}

	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Fatalf("expected error panic")
		}
		var cf *vdom.ChildrenForbiddenError
		if !errors.As(err, &cf) || cf.Tag != "br" {
			t.Fatalf("expected ChildrenForbiddenError for br, got %v", err)
		}
	}()
	helpers.Br("nope")
}

func TestHelpers_Marquee(t *testing.T) {
	if got := helpers.Marquee("woohoo").HTML(); got != "<marquee>woohoo</marquee>" {
		t.Fatalf("unexpected markup: %q", got)
	}
}
