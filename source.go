package vdom

import (
	"fmt"
	"io"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source abstracts over polymorphic input representations of the structured
// wire format. Value decodes the input into JSON shape (map[string]any, []any,
// string, ...).
type Source interface {
	Value() (any, error)
}

// Parse is the entry point for untrusted wire input. It decodes the source and
// delegates to FromValue, so canonical schema validation always applies.
func Parse(src Source) (*Element, error) {
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	v, err := src.Value()
	if err != nil {
		return nil, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return FromValue(v)
}

// JSONBytes wraps a JSON document.
func JSONBytes(b []byte) Source { return jsonBytesSource(b) }

type jsonBytesSource []byte

func (s jsonBytesSource) Value() (any, error) {
	var v any
	if err := j.Unmarshal(s, &v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// JSONReader wraps a JSON stream.
func JSONReader(r io.Reader) Source { return jsonReaderSource{r: r} }

type jsonReaderSource struct{ r io.Reader }

func (s jsonReaderSource) Value() (any, error) {
	var v any
	if err := j.NewDecoder(s.r).Decode(&v); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}

// YAMLBytes wraps a YAML document. The decoded value is normalized to JSON
// shape before validation.
func YAMLBytes(b []byte) Source { return yamlBytesSource(b) }

type yamlBytesSource []byte

func (s yamlBytesSource) Value() (any, error) {
	var v any
	if err := yaml.Unmarshal(s, &v); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return normalizeYAML(v), nil
}

// ValueSource wraps an already-decoded structured value.
func ValueSource(v any) Source { return valueSource{v: v} }

type valueSource struct{ v any }

func (s valueSource) Value() (any, error) { return s.v, nil }

// normalizeYAML rewrites map[any]any containers (emitted by yaml for
// non-string keys) into map[string]any so the validator sees JSON shape.
func normalizeYAML(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeYAML(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return v
	}
}
