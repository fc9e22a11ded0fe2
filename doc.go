package vdom

// Package vdom provides:
//
// - An immutable element tree (Element/Child) for virtual-DOM style markup
// - A schema-validated structured wire format (tagName/attributes/children/key)
// - Deterministic HTML serialization with mandatory escaping
// - Component factories for ergonomic tree construction
//
// Design policy:
// - Keep only public APIs in the root package; the canonical schema document
//   lives under schema/, codecs under codec/, tag helpers under helpers/, and
//   the CLI under cmd/vdom.
// - Elements freeze on construction. A fully built tree is safe for concurrent
//   reads; mutation attempts fail with ErrImmutable.
// - Untrusted structured input always passes schema validation before a tree
//   is built.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	div := vdom.Component("div")
//	p := vdom.Component("p")
//	el, err := div(p.Must("hey"))
//
//	el, err := vdom.Parse(vdom.JSONBytes(data))
//	html := el.HTML()
//	bundle := el.MIMEBundle()
