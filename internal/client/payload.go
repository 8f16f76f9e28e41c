package client

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse signals that an otherwise-successful upstream response
// is missing an expected field or carries it with the wrong shape.
var ErrMalformedResponse = errors.New("malformed upstream response")

// Payload is an untyped JSON object as returned by an upstream provider.
// Accessors convert missing or wrong-shaped fields into ErrMalformedResponse
// instead of panicking.
type Payload map[string]interface{}

// Object returns the nested object stored under key.
func (p Payload) Object(key string) (Payload, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, key)
	}

	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not an object", ErrMalformedResponse, key)
	}

	return Payload(obj), nil
}

// Objects returns the array of objects stored under key.
func (p Payload) Objects(key string) ([]Payload, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, key)
	}

	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: field %q is not an array", ErrMalformedResponse, key)
	}

	objs := make([]Payload, 0, len(arr))
	for i, el := range arr {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: element %d of %q is not an object", ErrMalformedResponse, i, key)
		}
		objs = append(objs, Payload(obj))
	}

	return objs, nil
}

// Number returns the numeric value stored under key.
func (p Payload) Number(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, key)
	}

	// encoding/json decodes every JSON number into float64.
	n, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: field %q is not a number", ErrMalformedResponse, key)
	}

	return n, nil
}

// Int returns the integer value stored under key.
func (p Payload) Int(key string) (int, error) {
	n, err := p.Number(key)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// String returns the string value stored under key.
func (p Payload) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformedResponse, key)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrMalformedResponse, key)
	}

	return s, nil
}
