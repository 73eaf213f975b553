package decode

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncode_LenientRoundTrip(t *testing.T) {
	payload := `{"id":7,"name":"JEI","wikiUrl":"https://wiki.example.com","released":"2023-01-01T00:00:00Z",` +
		`"hashes":[{"value":"abc","algo":1,"salt":"x"}],"rank":3,"brandNew":{"nested":true}}`

	var rec testRecord
	if err := mustDecoder(t, ModeLenient).Decode([]byte(payload), &rec); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	out, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var want, got map[string]any
	if err := json.Unmarshal([]byte(payload), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Encode() produced invalid JSON %s: %v", out, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_Absent(t *testing.T) {
	rec := testRecord{ID: 1, Name: "x"}

	out, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := `{"id":1,"name":"x","wikiUrl":"","released":"0001-01-01T00:00:00","hashes":null}`
	if string(out) != want {
		t.Errorf("Encode() = %s, want %s", out, want)
	}
}

func TestEncode_NilPointer(t *testing.T) {
	var rec *testRecord

	out, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Encode(nil) = %s, want null", out)
	}
}
