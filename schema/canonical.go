package schema

import (
	_ "embed"
	"fmt"
	"sync"

	j "github.com/goccy/go-json"
)

//go:embed schemas/vdom_schema_v1.json
var vdomSchemaV1 []byte

var (
	canonicalOnce sync.Once
	canonical     *Schema
	canonicalErr  error
)

// VDOM returns the canonical element-tree schema. The embedded document is
// decoded once per process; the returned value is shared and must be treated
// as read-only.
func VDOM() *Schema {
	canonicalOnce.Do(func() {
		s := &Schema{}
		if err := j.Unmarshal(vdomSchemaV1, s); err != nil {
			canonicalErr = fmt.Errorf("decode embedded vdom schema: %w", err)
			return
		}
		canonical = s
	})
	if canonicalErr != nil {
		// The embedded document ships with the module; failing to decode it is
		// a build defect, not a runtime condition.
		panic(canonicalErr)
	}
	return canonical
}
