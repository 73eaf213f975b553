package decode

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

var (
	enumType        = reflect.TypeFor[Enum]()
	extraType       = reflect.TypeFor[Extra]()
	nullTimeType    = reflect.TypeFor[NullTime]()
	rawMessageType  = reflect.TypeFor[json.RawMessage]()
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	marshalerType   = reflect.TypeFor[json.Marshaler]()
)

// field describes one declared member of a record struct.
type field struct {
	name      string
	index     int
	required  bool
	omitEmpty bool
	emptyNull bool
}

// structInfo is the decoded json layout of a struct type.
type structInfo struct {
	fields []field
	byName map[string]int
	// extra is the index of the Extra field, or -1.
	extra int
}

var structCache sync.Map // map[reflect.Type]*structInfo

func structFields(t reflect.Type) *structInfo {
	if cached, ok := structCache.Load(t); ok {
		return cached.(*structInfo)
	}

	info := &structInfo{byName: make(map[string]int), extra: -1}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Type == extraType {
			info.extra = i
			continue
		}

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}

		f := field{
			name:      name,
			index:     i,
			omitEmpty: hasOption(opts, "omitempty"),
			emptyNull: hasOption(sf.Tag.Get("decode"), "emptynull"),
		}
		f.required = !f.omitEmpty && !nullable(sf.Type)

		info.byName[name] = len(info.fields)
		info.fields = append(info.fields, f)
	}

	actual, _ := structCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}

// nullable reports whether a member of type t may be absent or null.
func nullable(t reflect.Type) bool {
	switch {
	case t.Kind() == reflect.Pointer, t.Kind() == reflect.Interface:
		return true
	case t == nullTimeType, t == rawMessageType:
		return true
	default:
		return false
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}
