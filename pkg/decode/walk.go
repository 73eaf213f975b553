package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// walker decodes one payload into one value, tracking the path of the
// member currently being decoded.
type walker struct {
	mode Mode

	residualFields  int
	unknownVariants int
}

func (w *walker) value(path Path, raw json.RawMessage, v reflect.Value) error {
	if isNull(raw) {
		if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface || nullable(v.Type()) {
			v.SetZero()
			return nil
		}
		return &fieldError{path: path, cause: ErrNull}
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return w.value(path, raw, v.Elem())
	}

	t := v.Type()
	switch {
	case t == rawMessageType:
		v.SetBytes(append(json.RawMessage(nil), raw...))
		return nil
	case t.Implements(enumType):
		return w.enum(path, raw, v)
	case reflect.PointerTo(t).Implements(unmarshalerType):
		if err := v.Addr().Interface().(json.Unmarshaler).UnmarshalJSON(raw); err != nil {
			return &fieldError{path: path, cause: err}
		}
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		return w.object(path, raw, v)
	case reflect.Slice:
		return w.array(path, raw, v)
	case reflect.Map:
		return w.mapping(path, raw, v)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return &fieldError{path: path, cause: fmt.Errorf("cannot decode into interface %s", t)}
		}
		var x any
		if err := json.Unmarshal(raw, &x); err != nil {
			return &fieldError{path: path, cause: err}
		}
		v.Set(reflect.ValueOf(x))
		return nil
	default:
		if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
			return &fieldError{path: path, cause: err}
		}
		return nil
	}
}

func (w *walker) object(path Path, raw json.RawMessage, v reflect.Value) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return &fieldError{path: path, cause: fmt.Errorf("expected object: %w", err)}
	}

	info := structFields(v.Type())
	seen := make([]bool, len(info.fields))
	var extra Extra

	for _, key := range sortedKeys(members) {
		member := members[key]

		idx, ok := info.byName[key]
		if !ok {
			switch w.mode {
			case ModeStrict:
				return &fieldError{path: path.field(key), cause: ErrUnknownField}
			case ModeLenient:
				if info.extra >= 0 {
					if extra == nil {
						extra = make(Extra)
					}
					extra[key] = member
					w.residualFields++
				}
			}
			continue
		}

		f := info.fields[idx]
		seen[idx] = true
		fv := v.Field(f.index)

		if f.emptyNull && string(bytes.TrimSpace(member)) == `""` {
			fv.SetZero()
			continue
		}
		if err := w.value(path.field(key), member, fv); err != nil {
			return err
		}
	}

	for i, f := range info.fields {
		if f.required && !seen[i] {
			return &fieldError{path: path.field(f.name), cause: ErrMissingField}
		}
	}

	if info.extra >= 0 {
		v.Field(info.extra).Set(reflect.ValueOf(extra))
	}
	return nil
}

func (w *walker) array(path Path, raw json.RawMessage, v reflect.Value) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return &fieldError{path: path, cause: fmt.Errorf("expected array: %w", err)}
	}

	s := reflect.MakeSlice(v.Type(), len(elems), len(elems))
	for i, elem := range elems {
		if err := w.value(path.index(i), elem, s.Index(i)); err != nil {
			return err
		}
	}
	v.Set(s)
	return nil
}

func (w *walker) mapping(path Path, raw json.RawMessage, v reflect.Value) error {
	t := v.Type()
	if t.Key().Kind() != reflect.String {
		return &fieldError{path: path, cause: fmt.Errorf("unsupported map key type %s", t.Key())}
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return &fieldError{path: path, cause: fmt.Errorf("expected object: %w", err)}
	}

	m := reflect.MakeMapWithSize(t, len(members))
	for _, key := range sortedKeys(members) {
		elem := reflect.New(t.Elem()).Elem()
		if err := w.value(path.field(key), members[key], elem); err != nil {
			return err
		}
		m.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), elem)
	}
	v.Set(m)
	return nil
}

func (w *walker) enum(path Path, raw json.RawMessage, v reflect.Value) error {
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return &fieldError{path: path, cause: err}
	}

	if setInteger(v, n) && v.Interface().(Enum).Known() {
		return nil
	}

	if w.mode == ModeLenient {
		setInteger(v, UnknownVariant)
		w.unknownVariants++
		return nil
	}
	return &fieldError{
		path:  path,
		cause: fmt.Errorf("%w %d for %s", ErrUnknownVariant, n, v.Type().Name()),
	}
}

// setInteger stores n into an integer-kinded value, reporting false when
// it does not fit.
func setInteger(v reflect.Value, n int64) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.OverflowInt(n) {
			return false
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n < 0 || v.OverflowUint(uint64(n)) {
			return false
		}
		v.SetUint(uint64(n))
	default:
		return false
	}
	return true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// sortedKeys gives deterministic error reporting when several members fail.
func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
