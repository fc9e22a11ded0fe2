package vdom

import (
	"fmt"
	"sort"
)

// Attr is a single attribute pair. Used by component factories and WithAttrPairs.
type Attr struct {
	Key   string
	Value string
}

// Attrs is a string-to-string mapping that remembers insertion order so
// serialization stays deterministic. An Attrs owned by a built Element is
// frozen; Set fails with ErrImmutable from then on.
type Attrs struct {
	keys   []string
	values map[string]string
	frozen bool
}

// NewAttrs returns an empty, mutable attribute mapping.
func NewAttrs() *Attrs {
	return &Attrs{values: map[string]string{}}
}

// AttrsFromMap builds an Attrs from a plain map. Keys are ordered
// lexicographically because Go maps carry no insertion order.
func AttrsFromMap(m map[string]string) *Attrs {
	a := NewAttrs()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.keys = append(a.keys, k)
		a.values[k] = m[k]
	}
	return a
}

// AttrsFromPairs builds an Attrs preserving the order of the given pairs.
// A repeated key keeps its first position and takes the last value.
func AttrsFromPairs(pairs ...Attr) *Attrs {
	a := NewAttrs()
	for _, p := range pairs {
		if _, ok := a.values[p.Key]; !ok {
			a.keys = append(a.keys, p.Key)
		}
		a.values[p.Key] = p.Value
	}
	return a
}

// Len reports the number of attributes.
func (a *Attrs) Len() int { return len(a.keys) }

// Get returns the value for key and whether it is present.
func (a *Attrs) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Keys returns the attribute keys in mapping order. The slice is a copy.
func (a *Attrs) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every attribute in mapping order until fn returns false.
func (a *Attrs) Each(fn func(key, value string) bool) {
	for _, k := range a.keys {
		if !fn(k, a.values[k]) {
			return
		}
	}
}

// Set inserts or replaces an attribute. On a frozen Attrs it fails with
// ErrImmutable and leaves the mapping unchanged.
func (a *Attrs) Set(key, value string) error {
	if a.frozen {
		return fmt.Errorf("vdom: set attribute %q: %w", key, ErrImmutable)
	}
	if a.values == nil {
		a.values = map[string]string{}
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return nil
}

// Clone returns a mutable copy of the mapping.
func (a *Attrs) Clone() *Attrs {
	out := NewAttrs()
	out.keys = make([]string, len(a.keys))
	copy(out.keys, a.keys)
	for k, v := range a.values {
		out.values[k] = v
	}
	return out
}

// Map returns the attributes as a plain map. The map is a copy.
func (a *Attrs) Map() map[string]string {
	out := make(map[string]string, len(a.keys))
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// equal compares content without regard to order; attribute order is not
// semantically significant.
func (a *Attrs) equal(b *Attrs) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for k, v := range a.values {
		if bv, ok := b.values[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func (a *Attrs) freeze() { a.frozen = true }
