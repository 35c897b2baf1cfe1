package application

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// ResponseShape tells which of the two gateway response variants a
// GatewayResponse carries.
type ResponseShape int

const (
	ShapeUnknown ResponseShape = iota
	ShapeObject
	ShapeMapping
)

func (s ResponseShape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

var ErrEmptyResponse = errors.New("empty gateway response")

// Mapper is implemented by responses that can present themselves as a
// key-value mapping.
type Mapper interface {
	AsMap() map[string]any
}

// GatewayResponse is a gateway reply in one of two shapes: a struct exposing
// named attributes (object-style) or a key-value mapping (mapping-style).
// The zero value carries nothing and fails to decode.
type GatewayResponse struct {
	object  any
	mapping map[string]any
}

// FromObject wraps an attribute-bearing struct (or pointer to one).
func FromObject(v any) GatewayResponse {
	return GatewayResponse{object: v}
}

// FromMapping wraps a key-value response.
func FromMapping(m map[string]any) GatewayResponse {
	if m == nil {
		m = map[string]any{}
	}
	return GatewayResponse{mapping: m}
}

// ResolveResponse inspects a raw gateway value and picks its variant.
// Anything that behaves as a mapping is treated as one, even if it also
// exposes attributes.
func ResolveResponse(v any) (GatewayResponse, error) {
	switch raw := v.(type) {
	case nil:
		return GatewayResponse{}, ErrEmptyResponse
	case map[string]any:
		return FromMapping(raw), nil
	case Mapper:
		return FromMapping(raw.AsMap()), nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return GatewayResponse{}, ErrEmptyResponse
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return GatewayResponse{}, fmt.Errorf("unsupported gateway response type %T", v)
	}
	return FromObject(v), nil
}

func (r GatewayResponse) Shape() ResponseShape {
	switch {
	case r.mapping != nil:
		return ShapeMapping
	case r.object != nil:
		return ShapeObject
	default:
		return ShapeUnknown
	}
}

// Fields returns the response as a flat mapping keyed by the gateway's
// field names.
func (r GatewayResponse) Fields() (map[string]any, error) {
	switch r.Shape() {
	case ShapeMapping:
		return r.mapping, nil
	case ShapeObject:
		fields := map[string]any{}
		if err := decode(r.object, &fields); err != nil {
			return nil, fmt.Errorf("flattening object response: %w", err)
		}
		return fields, nil
	default:
		return nil, ErrEmptyResponse
	}
}

// Decode fills dst, a pointer to a struct with json tags, from the response.
func (r GatewayResponse) Decode(dst any) error {
	fields, err := r.Fields()
	if err != nil {
		return err
	}
	return decode(fields, dst)
}

func decode(input, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
