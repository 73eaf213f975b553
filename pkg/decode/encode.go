package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// Encode serializes v as JSON using the same field layout the decoder
// reads. Members captured into Extra are written back after the declared
// fields of their struct, so a record decoded in ModeLenient re-encodes to
// an equivalent payload.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v reflect.Value) error {
	if !v.IsValid() {
		buf.WriteString("null")
		return nil
	}

	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeValue(buf, v.Elem())
	}

	if v.Type().Implements(marshalerType) {
		b, err := v.Interface().(json.Marshaler).MarshalJSON()
		if err != nil {
			return fmt.Errorf("marshal %s: %w", v.Type(), err)
		}
		buf.Write(b)
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		return encodeStruct(buf, v)
	case reflect.Slice:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, v.Index(i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case reflect.Map:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeKey(buf, k.String())
			if err := encodeValue(buf, v.MapIndex(k)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return err
		}
		buf.Write(b)
		return nil
	}
}

func encodeStruct(buf *bytes.Buffer, v reflect.Value) error {
	info := structFields(v.Type())

	buf.WriteByte('{')
	first := true
	for _, f := range info.fields {
		fv := v.Field(f.index)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeKey(buf, f.name)
		if f.emptyNull && fv.Kind() == reflect.Pointer && fv.IsNil() {
			// emptynull members arrive as "" rather than null.
			buf.WriteString(`""`)
			continue
		}
		if err := encodeValue(buf, fv); err != nil {
			return err
		}
	}

	if info.extra >= 0 {
		extra := v.Field(info.extra).Interface().(Extra)
		keys := make([]string, 0, len(extra))
		for k := range extra {
			if _, declared := info.byName[k]; !declared {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			writeKey(buf, k)
			buf.Write(extra[k])
		}
	}

	buf.WriteByte('}')
	return nil
}

func writeKey(buf *bytes.Buffer, name string) {
	b, _ := json.Marshal(name)
	buf.Write(b)
	buf.WriteByte(':')
}

// isEmptyValue mirrors encoding/json's omitempty rules.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	default:
		return false
	}
}
