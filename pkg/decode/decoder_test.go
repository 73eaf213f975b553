package decode

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testAlgo uint8

const (
	testAlgoSha1 testAlgo = 1
	testAlgoMd5  testAlgo = 2
)

func (a testAlgo) Known() bool {
	return a == testAlgoSha1 || a == testAlgoMd5
}

type testHash struct {
	Value string   `json:"value"`
	Algo  testAlgo `json:"algo"`
	Extra Extra    `json:"-"`
}

type testRecord struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	WikiURL  *string    `json:"wikiUrl" decode:"emptynull"`
	Released NullTime   `json:"released"`
	Hashes   []testHash `json:"hashes"`
	Rank     int        `json:"rank,omitempty"`
	Extra    Extra      `json:"-"`
}

const validPayload = `{"id":7,"name":"JEI","hashes":[{"value":"abc","algo":1}]}`

func mustDecoder(t *testing.T, mode Mode) *Decoder {
	t.Helper()
	d, err := New(mode)
	if err != nil {
		t.Fatalf("New(%q) error = %v", mode, err)
	}
	return d
}

func asDecodeError(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatal("Expected decode error but got nil")
	}
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("error %v is not a *decode.Error", err)
	}
	return de
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input     string
		want      Mode
		expectErr bool
	}{
		{input: "", want: ModeIgnore},
		{input: "strict", want: ModeStrict},
		{input: "LENIENT", want: ModeLenient},
		{input: " ignore ", want: ModeIgnore},
		{input: "relaxed", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseMode(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_InvalidMode(t *testing.T) {
	if _, err := New(Mode("bogus")); err == nil {
		t.Error("New with invalid mode should fail")
	}
}

func TestDecode_ValidPayloadAllModes(t *testing.T) {
	for _, mode := range []Mode{ModeStrict, ModeLenient, ModeIgnore} {
		t.Run(string(mode), func(t *testing.T) {
			rec, err := Into[testRecord](mustDecoder(t, mode), []byte(validPayload))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			want := testRecord{
				ID:     7,
				Name:   "JEI",
				Hashes: []testHash{{Value: "abc", Algo: testAlgoSha1}},
			}
			if diff := cmp.Diff(want, rec); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_UnknownField(t *testing.T) {
	payload := []byte(`{"id":7,"name":"JEI","hashes":[{"value":"abc","algo":1}],"brandNew":{"nested":true}}`)

	t.Run("strict rejects", func(t *testing.T) {
		var rec testRecord
		de := asDecodeError(t, mustDecoder(t, ModeStrict).Decode(payload, &rec))
		if !errors.Is(de, ErrUnknownField) {
			t.Errorf("Cause = %v, want ErrUnknownField", de.Cause)
		}
		if got := de.Path.String(); got != "brandNew" {
			t.Errorf("Path = %q, want %q", got, "brandNew")
		}
		if string(de.Body) != string(payload) {
			t.Errorf("Body = %s, want original payload", de.Body)
		}
	})

	t.Run("lenient captures", func(t *testing.T) {
		rec, err := Into[testRecord](mustDecoder(t, ModeLenient), payload)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(rec.Extra) != 1 {
			t.Fatalf("len(Extra) = %d, want 1", len(rec.Extra))
		}
		if got := string(rec.Extra["brandNew"]); got != `{"nested":true}` {
			t.Errorf("Extra[brandNew] = %s, want %s", got, `{"nested":true}`)
		}
	})

	t.Run("ignore drops", func(t *testing.T) {
		rec, err := Into[testRecord](mustDecoder(t, ModeIgnore), payload)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if rec.Extra != nil {
			t.Errorf("Extra = %v, want nil", rec.Extra)
		}
	})
}

func TestDecode_StrictNestedUnknownFieldPath(t *testing.T) {
	payload := []byte(`{"id":1,"name":"x","hashes":[{"value":"a","algo":1},{"value":"b","algo":2,"salt":"s"}]}`)

	var rec testRecord
	de := asDecodeError(t, mustDecoder(t, ModeStrict).Decode(payload, &rec))
	if got := de.Path.String(); got != "hashes[1].salt" {
		t.Errorf("Path = %q, want %q", got, "hashes[1].salt")
	}
	if de.Path.Last() != "salt" {
		t.Errorf("Path.Last() = %q, want salt", de.Path.Last())
	}
}

func TestDecode_UnknownVariant(t *testing.T) {
	payload := []byte(`{"id":1,"name":"x","hashes":[{"value":"a","algo":9}]}`)

	tests := []struct {
		mode      Mode
		expectErr bool
	}{
		{mode: ModeStrict, expectErr: true},
		{mode: ModeLenient, expectErr: false},
		{mode: ModeIgnore, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			rec, err := Into[testRecord](mustDecoder(t, tt.mode), payload)
			if tt.expectErr {
				de := asDecodeError(t, err)
				if !errors.Is(de, ErrUnknownVariant) {
					t.Errorf("Cause = %v, want ErrUnknownVariant", de.Cause)
				}
				if got := de.Path.String(); got != "hashes[0].algo" {
					t.Errorf("Path = %q, want %q", got, "hashes[0].algo")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if rec.Hashes[0].Algo != UnknownVariant {
				t.Errorf("Algo = %d, want UnknownVariant", rec.Hashes[0].Algo)
			}
		})
	}
}

func TestDecode_UnknownVariantOutOfRange(t *testing.T) {
	payload := []byte(`{"id":1,"name":"x","hashes":[{"value":"a","algo":300}]}`)

	rec, err := Into[testRecord](mustDecoder(t, ModeLenient), payload)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rec.Hashes[0].Algo != UnknownVariant {
		t.Errorf("Algo = %d, want UnknownVariant", rec.Hashes[0].Algo)
	}

	_, err = Into[testRecord](mustDecoder(t, ModeIgnore), payload)
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("ignore mode error = %v, want ErrUnknownVariant", err)
	}
}

func TestDecode_NullTime(t *testing.T) {
	tests := []struct {
		name      string
		released  string
		wantValid bool
		wantYear  int
	}{
		{name: "sentinel", released: `"0001-01-01T00:00:00"`, wantValid: false},
		{name: "null", released: `null`, wantValid: false},
		{name: "real date", released: `"2023-05-01T10:00:00.123Z"`, wantValid: true, wantYear: 2023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(`{"id":1,"name":"x","hashes":[],"released":` + tt.released + `}`)
			rec, err := Into[testRecord](mustDecoder(t, ModeStrict), payload)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if rec.Released.Valid != tt.wantValid {
				t.Errorf("Released.Valid = %v, want %v", rec.Released.Valid, tt.wantValid)
			}
			if tt.wantValid && rec.Released.Time.Year() != tt.wantYear {
				t.Errorf("Released.Year = %d, want %d", rec.Released.Time.Year(), tt.wantYear)
			}
			if !tt.wantValid && !rec.Released.Time.IsZero() {
				t.Errorf("Released.Time = %v, want zero", rec.Released.Time)
			}
		})
	}
}

func TestDecode_BadTimestampReportsPath(t *testing.T) {
	payload := []byte(`{"id":1,"name":"x","hashes":[],"released":"yesterday"}`)

	de := asDecodeError(t, mustDecoder(t, ModeIgnore).Decode(payload, &testRecord{}))
	if got := de.Path.String(); got != "released" {
		t.Errorf("Path = %q, want released", got)
	}
}

func TestDecode_TypeMismatchPath(t *testing.T) {
	payload := []byte(`{"id":1,"name":"x","hashes":[{"value":"a","algo":1},{"value":5,"algo":1}]}`)

	var rec testRecord
	de := asDecodeError(t, mustDecoder(t, ModeIgnore).Decode(payload, &rec))
	if got := de.Path.String(); got != "hashes[1].value" {
		t.Errorf("Path = %q, want %q", got, "hashes[1].value")
	}
	var typeErr *json.UnmarshalTypeError
	if !errors.As(de, &typeErr) {
		t.Errorf("Cause = %T, want *json.UnmarshalTypeError", de.Cause)
	}
}

func TestDecode_MissingRequiredField(t *testing.T) {
	payload := []byte(`{"id":1,"hashes":[]}`)

	for _, mode := range []Mode{ModeStrict, ModeLenient, ModeIgnore} {
		t.Run(string(mode), func(t *testing.T) {
			de := asDecodeError(t, mustDecoder(t, mode).Decode(payload, &testRecord{}))
			if !errors.Is(de, ErrMissingField) {
				t.Errorf("Cause = %v, want ErrMissingField", de.Cause)
			}
			if got := de.Path.String(); got != "name" {
				t.Errorf("Path = %q, want name", got)
			}
		})
	}
}

func TestDecode_OptionalFieldsMayBeAbsent(t *testing.T) {
	rec, err := Into[testRecord](mustDecoder(t, ModeStrict), []byte(validPayload))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if rec.WikiURL != nil || rec.Released.Valid || rec.Rank != 0 {
		t.Errorf("optional fields not zero: %+v", rec)
	}
}

func TestDecode_NullForNonNullable(t *testing.T) {
	payload := []byte(`{"id":1,"name":null,"hashes":[]}`)

	de := asDecodeError(t, mustDecoder(t, ModeLenient).Decode(payload, &testRecord{}))
	if !errors.Is(de, ErrNull) {
		t.Errorf("Cause = %v, want ErrNull", de.Cause)
	}
	if got := de.Path.String(); got != "name" {
		t.Errorf("Path = %q, want name", got)
	}
}

func TestDecode_EmptyNullString(t *testing.T) {
	tests := []struct {
		name    string
		wikiURL string
		want    *string
	}{
		{name: "empty", wikiURL: `""`, want: nil},
		{name: "null", wikiURL: `null`, want: nil},
		{name: "value", wikiURL: `"https://wiki.example"`, want: ptr("https://wiki.example")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(`{"id":1,"name":"x","hashes":[],"wikiUrl":` + tt.wikiURL + `}`)
			rec, err := Into[testRecord](mustDecoder(t, ModeStrict), payload)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, rec.WikiURL); diff != "" {
				t.Errorf("WikiURL mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_TopLevelArray(t *testing.T) {
	payload := []byte(`[{"value":"a","algo":1},{"value":"b","algo":"sha"}]`)

	de := asDecodeError(t, mustDecoder(t, ModeIgnore).Decode(payload, &[]testHash{}))
	if got := de.Path.String(); got != "[1].algo" {
		t.Errorf("Path = %q, want [1].algo", got)
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	payload := []byte(`{"id":1,`)

	de := asDecodeError(t, mustDecoder(t, ModeIgnore).Decode(payload, &testRecord{}))
	if len(de.Path) != 0 {
		t.Errorf("Path = %q, want empty", de.Path)
	}
	if string(de.Body) != string(payload) {
		t.Errorf("Body = %s, want %s", de.Body, payload)
	}
}

func TestDecode_NonPointerTarget(t *testing.T) {
	err := mustDecoder(t, ModeIgnore).Decode([]byte(validPayload), testRecord{})
	if err == nil {
		t.Fatal("Decode into non-pointer should fail")
	}
	var de *Error
	if errors.As(err, &de) {
		t.Error("non-pointer target should not produce a *decode.Error")
	}
}

func TestPath_String(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{path: nil, want: ""},
		{path: Path{"data"}, want: "data"},
		{path: Path{"data", "[3]", "latestFiles", "[0]", "algo"}, want: "data[3].latestFiles[0].algo"},
		{path: Path{"[2]", "name"}, want: "[2].name"},
	}

	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("Path%v.String() = %q, want %q", []string(tt.path), got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Path: Path{"data", "[0]", "id"}, Cause: ErrMissingField}
	if got, want := err.Error(), "decode data[0].id: missing required field"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &Error{Cause: errors.New("unexpected end of JSON input")}
	if got, want := err.Error(), "decode: unexpected end of JSON input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func ptr[T any](v T) *T {
	return &v
}
