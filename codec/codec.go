// Package codec provides bidirectional converters between wire
// representations and element trees.
package codec

import (
	"context"

	j "github.com/goccy/go-json"

	vdom "github.com/reoring/govdom"
	js "github.com/reoring/govdom/schema"
)

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> validate -> domain
	Encode(ctx context.Context, b B) (A, error) // domain -> wire -> revalidate
}

// Element returns a Codec between the structured mapping form and *vdom.Element.
// Decode validates against the canonical schema; Encode revalidates its own
// output so a corrupted wire form can never leave the codec.
func Element() Codec[map[string]any, *vdom.Element] { return elementCodec{} }

type elementCodec struct{}

func (elementCodec) Decode(ctx context.Context, a map[string]any) (*vdom.Element, error) {
	return vdom.FromValue(a)
}

func (elementCodec) Encode(ctx context.Context, b *vdom.Element) (map[string]any, error) {
	out := b.Structured()
	if err := vdom.Validate(out, js.VDOM()); err != nil {
		return nil, err
	}
	return out, nil
}

// JSON returns a Codec between JSON bytes and *vdom.Element.
func JSON() Codec[[]byte, *vdom.Element] { return jsonCodec{} }

type jsonCodec struct{}

func (jsonCodec) Decode(ctx context.Context, a []byte) (*vdom.Element, error) {
	return vdom.Parse(vdom.JSONBytes(a))
}

func (jsonCodec) Encode(ctx context.Context, b *vdom.Element) ([]byte, error) {
	m, err := Element().Encode(ctx, b)
	if err != nil {
		return nil, err
	}
	return j.Marshal(m)
}
