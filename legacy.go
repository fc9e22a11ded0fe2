package vdom

import js "github.com/reoring/govdom/schema"

// Deprecated: prefer FromValue. NewFromValue exists for callers that used to
// hand a structured value to the element constructor in place of a tag name.
// It validates against the canonical schema, builds the tree, and emits a
// deprecation signal.
func NewFromValue(v any) (*Element, error) {
	deprecated("passing a structured value to the constructor is deprecated; use FromValue")
	return FromValue(v)
}

// Deprecated: prefer Component. CreateElement keeps the name of an older
// helper whose meaning collides with React.createElement.
func CreateElement(tag string) Factory {
	deprecated("CreateElement is deprecated in favor of Component")
	return Component(tag)
}

// Deprecated: prefer (*Element).JSON.
func (e *Element) JSONContents() ([]byte, error) {
	deprecated("JSONContents is deprecated, use JSON instead")
	return e.JSON()
}

// Deprecated: prefer ToValue.
func ToJSON(v any, s *js.Schema) (any, error) {
	deprecated("ToJSON is deprecated, use ToValue instead")
	return ToValue(v, s)
}
