package decode

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Decoder decodes payloads into record shapes under one Mode.
// A Decoder is stateless apart from its mode and safe for concurrent use.
type Decoder struct {
	mode Mode
}

// New creates a decoder for the given mode.
func New(mode Mode) (*Decoder, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("invalid decode mode %q", mode)
	}
	return &Decoder{mode: mode}, nil
}

// Mode returns the compatibility mode of the decoder.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Decode decodes data into v, which must be a non-nil pointer.
// Failures are returned as *Error.
func (d *Decoder) Decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", v)
	}

	if !json.Valid(data) {
		// Let encoding/json produce the positioned syntax error.
		var discard json.RawMessage
		err := json.Unmarshal(data, &discard)
		if err == nil {
			err = fmt.Errorf("invalid JSON")
		}
		decodeErrors.WithLabelValues(string(d.mode)).Inc()
		return &Error{Body: data, Cause: err}
	}

	w := &walker{mode: d.mode}
	if err := w.value(nil, json.RawMessage(data), rv.Elem()); err != nil {
		decodeErrors.WithLabelValues(string(d.mode)).Inc()
		if fe, ok := err.(*fieldError); ok {
			return &Error{Body: data, Path: fe.path, Cause: fe.cause}
		}
		return &Error{Body: data, Cause: err}
	}

	if w.residualFields > 0 {
		residualFields.Add(float64(w.residualFields))
	}
	if w.unknownVariants > 0 {
		unknownVariants.Add(float64(w.unknownVariants))
	}
	return nil
}

// Into decodes data into a fresh value of type T.
func Into[T any](d *Decoder, data []byte) (T, error) {
	var v T
	err := d.Decode(data, &v)
	return v, err
}
