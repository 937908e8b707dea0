package codec

import (
	"testing"

	"github.com/selin-ak/tickdo/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cases := []model.List{
		{},
		{{ID: 0, Text: "Buy milk"}},
		{{ID: 0, Text: "a", Completed: true}, {ID: 1, Text: "b"}, {ID: 5, Text: "  spaced  "}},
		{{ID: 2, Text: `quotes " and \ slashes`}, {ID: 3, Text: "unicode ✔"}},
	}
	for _, todos := range cases {
		got := Decode(Encode(todos), true)
		if !got.Equal(todos) {
			t.Fatalf("round trip: got %v, want %v", got, todos)
		}
	}
}

func TestEncodeFieldContract(t *testing.T) {
	got := Encode(model.List{{ID: 1, Text: "x", Completed: true}})
	want := `[{"id":1,"text":"x","completed":true}]`
	if got != want {
		t.Fatalf("encoded %q, want %q", got, want)
	}
}

func TestEncodeNilList(t *testing.T) {
	if got := Encode(nil); got != "[]" {
		t.Fatalf("nil list encoded as %q", got)
	}
}

func TestDecodeAbsent(t *testing.T) {
	got := Decode("", false)
	if got == nil || len(got) != 0 {
		t.Fatalf("absent should decode to empty list, got %v", got)
	}
}

func TestDecodeGarbage(t *testing.T) {
	cases := []string{
		"",
		"not json at all",
		"{",
		`{"id":1}`,              // object, not array
		`[{"id":"one"}]`,        // wrong id type
		`[{"completed":"yes"}]`, // wrong completed type
		`[1,2,3]`,               // array of the wrong element kind
		"null",
	}
	for _, raw := range cases {
		got := Decode(raw, true)
		if got == nil || len(got) != 0 {
			t.Fatalf("Decode(%q) = %v, want empty list", raw, got)
		}
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	got := Decode(`[{"id":1,"text":"x","completed":false,"extra":"ok"}]`, true)
	want := model.List{{ID: 1, Text: "x"}}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
