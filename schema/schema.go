// Package schema holds the JSON Schema representation used by govdom, along
// with the canonical element-tree schema document. Validation itself lives in
// the root package; this package only describes schemas.
package schema

import (
	"fmt"

	j "github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	SchemaURI   string `json:"$schema,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Ref         string `json:"$ref,omitempty"`
	Type        string `json:"type,omitempty"`

	// String
	MinLength *int `json:"minLength,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Additional *Additional        `json:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	// Local definitions addressable via "#/definitions/<name>".
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// Additional models the bool-or-schema form of additionalProperties.
// Forbid is set when the document says `false`; otherwise Schema constrains
// properties not listed under Properties.
type Additional struct {
	Forbid bool
	Schema *Schema
}

func (a *Additional) UnmarshalJSON(b []byte) error {
	var allowed bool
	if err := j.Unmarshal(b, &allowed); err == nil {
		a.Forbid = !allowed
		a.Schema = nil
		return nil
	}
	var s Schema
	if err := j.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("additionalProperties must be bool or schema: %w", err)
	}
	a.Forbid = false
	a.Schema = &s
	return nil
}

func (a Additional) MarshalJSON() ([]byte, error) {
	if a.Schema != nil {
		return j.Marshal(a.Schema)
	}
	return j.Marshal(!a.Forbid)
}

// Resolve follows a local $ref against the document root. It returns the
// target schema or an error for unknown pointer shapes.
func Resolve(root *Schema, ref string) (*Schema, error) {
	switch {
	case ref == "#":
		return root, nil
	case len(ref) > len("#/definitions/") && ref[:len("#/definitions/")] == "#/definitions/":
		name := ref[len("#/definitions/"):]
		if root.Definitions != nil {
			if s, ok := root.Definitions[name]; ok {
				return s, nil
			}
		}
		return nil, fmt.Errorf("unresolved schema reference %q", ref)
	default:
		return nil, fmt.Errorf("unsupported schema reference %q (only local definitions)", ref)
	}
}
