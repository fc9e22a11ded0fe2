package vdom

import (
	"errors"
	"fmt"
	"strings"

	js "github.com/reoring/govdom/schema"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType       = "invalid_type"
	CodeRequired          = "required"
	CodeUnknownKey        = "unknown_key"
	CodeTooShort          = "too_short"
	CodeInvalidChild      = "invalid_child"
	CodeImmutable         = "immutable"
	CodeChildrenForbidden = "children_forbidden"
	CodeSchemaMismatch    = "schema_mismatch"
	CodeAnyOfMismatch     = "anyof_mismatch"
	CodeBadRef            = "bad_ref"
	CodeParseError        = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /children/2/tagName).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"string", "got":"bool"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// Unwrap exposes issue causes so errors.Is can match sentinel errors such as
// ErrInvalidChild through an Issues value.
func (iss Issues) Unwrap() []error {
	var errs []error
	for _, it := range iss {
		if it.Cause != nil {
			errs = append(errs, it.Cause)
		}
	}
	return errs
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}

// ErrImmutable reports an attempted mutation of a frozen element or attribute
// set. Matched with errors.Is.
var ErrImmutable = errors.New("cannot change attribute of immutable element")

// ErrInvalidChild reports a child that is neither text nor an element node.
// Matched with errors.Is.
var ErrInvalidChild = errors.New("children must be text or element nodes")

// SchemaError reports that a structured value did not conform to a schema. It
// carries the schema that was applied and the underlying validator detail.
type SchemaError struct {
	Schema *js.Schema
	Detail error // typically Issues
}

func (e *SchemaError) Error() string {
	name := "schema"
	if e.Schema != nil && e.Schema.Title != "" {
		name = e.Schema.Title
	}
	return fmt.Sprintf("value didn't match the schema: %s. %v", name, e.Detail)
}

func (e *SchemaError) Unwrap() error { return e.Detail }

// ChildrenForbiddenError reports children passed to a component configured
// without them.
type ChildrenForbiddenError struct {
	Tag string
}

func (e *ChildrenForbiddenError) Error() string {
	return fmt.Sprintf("<%s /> cannot have children", e.Tag)
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
