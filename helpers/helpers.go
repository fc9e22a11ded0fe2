// Package helpers exposes ready-made component factories for the common HTML
// vocabulary. Each helper panics on malformed arguments, which keeps nested
// literals readable:
//
//	helpers.Div(
//		helpers.H1("Hello"),
//		helpers.P("Now you can ", helpers.B("compose"), " trees."),
//	)
//
// Use vdom.Component directly when errors must be handled programmatically.
package helpers

import vdom "github.com/reoring/govdom"

func tag(name string) func(args ...any) *vdom.Element {
	f := vdom.Component(name)
	return func(args ...any) *vdom.Element { return f.Must(args...) }
}

func void(name string) func(args ...any) *vdom.Element {
	f := vdom.Component(name, vdom.NoChildren())
	return func(args ...any) *vdom.Element { return f.Must(args...) }
}

// Document structure.
var (
	Div     = tag("div")
	Span    = tag("span")
	Main    = tag("main")
	Section = tag("section")
	Article = tag("article")
	Aside   = tag("aside")
	Header  = tag("header")
	Footer  = tag("footer")
	Nav     = tag("nav")
)

// Headings and text content.
var (
	H1         = tag("h1")
	H2         = tag("h2")
	H3         = tag("h3")
	H4         = tag("h4")
	H5         = tag("h5")
	H6         = tag("h6")
	P          = tag("p")
	Pre        = tag("pre")
	Blockquote = tag("blockquote")
	Figure     = tag("figure")
	Figcaption = tag("figcaption")
)

// Inline semantics.
var (
	A      = tag("a")
	B      = tag("b")
	I      = tag("i")
	U      = tag("u")
	Em     = tag("em")
	Strong = tag("strong")
	Small  = tag("small")
	Code   = tag("code")
	Kbd    = tag("kbd")
	Samp   = tag("samp")
	Sub    = tag("sub")
	Sup    = tag("sup")
	Mark   = tag("mark")
)

// Lists.
var (
	Ul = tag("ul")
	Ol = tag("ol")
	Li = tag("li")
	Dl = tag("dl")
	Dt = tag("dt")
	Dd = tag("dd")
)

// Tables.
var (
	Table    = tag("table")
	Caption  = tag("caption")
	Thead    = tag("thead")
	Tbody    = tag("tbody")
	Tfoot    = tag("tfoot")
	Tr       = tag("tr")
	Td       = tag("td")
	Th       = tag("th")
	Colgroup = tag("colgroup")
)

// Forms.
var (
	Form     = tag("form")
	Fieldset = tag("fieldset")
	Legend   = tag("legend")
	Label    = tag("label")
	Button   = tag("button")
	Select   = tag("select")
	Optgroup = tag("optgroup")
	Option   = tag("option")
	Textarea = tag("textarea")
	Datalist = tag("datalist")
	Output   = tag("output")
	Progress = tag("progress")
	Meter    = tag("meter")
)

// Media and embedding.
var (
	Audio   = tag("audio")
	Video   = tag("video")
	Canvas  = tag("canvas")
	Iframe  = tag("iframe")
	Object  = tag("object")
	Picture = tag("picture")
)

// Everyone's favorite.
var Marquee = tag("marquee")

// Void elements: no children allowed.
var (
	Img    = void("img")
	Br     = void("br")
	Hr     = void("hr")
	Input  = void("input")
	Col    = void("col")
	Embed  = void("embed")
	Source = void("source")
	Track  = void("track")
	Wbr    = void("wbr")
	Area   = void("area")
	Base   = void("base")
	Link   = void("link")
	Meta   = void("meta")
	Param  = void("param")
)
