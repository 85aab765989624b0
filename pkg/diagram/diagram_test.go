package diagram

import (
	"strings"
	"testing"

	"github.com/rcakit/ishikawa/pkg/errors"
)

func TestDecode(t *testing.T) {
	input := `{
		"effect": "medication error",
		"categories": [
			{"label": "people", "items": ["fatigue", "handover gap"]},
			{"label": "process", "items": ["no double check"]}
		]
	}`

	in, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if in.Effect != "medication error" {
		t.Errorf("Effect = %q", in.Effect)
	}
	if len(in.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(in.Categories))
	}
	if in.Categories[0].Label != "people" || len(in.Categories[0].Items) != 2 {
		t.Errorf("first category = %+v", in.Categories[0])
	}
}

func TestDecodeCoercesScalars(t *testing.T) {
	input := `{
		"effect": 42,
		"categories": [
			{"label": null, "items": [1.5, true, "ok", null]}
		]
	}`

	in, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if in.Effect != "42" {
		t.Errorf("Effect = %q, want %q", in.Effect, "42")
	}
	if in.Categories[0].Label != "" {
		t.Errorf("null label = %q, want empty", in.Categories[0].Label)
	}
	want := []string{"1.5", "true", "ok", ""}
	got := in.Categories[0].Items
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"effect": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %q, want INVALID_INPUT", errors.GetCode(err))
	}
}

func TestTable(t *testing.T) {
	in := Input{
		Effect: "e",
		Categories: []Category{
			{Label: "a", Items: []string{"x", "y"}},
			{Label: "b"},
		},
	}

	rows := in.Table()
	want := []Row{{"a", "x"}, {"a", "y"}, {"b", ""}}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row[%d] = %+v, want %+v", i, rows[i], want[i])
		}
	}
}
