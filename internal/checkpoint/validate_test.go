package checkpoint

import (
	"strings"
	"testing"
)

func TestValidateRequiredEmptyShortCircuits(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "whatLearned", Kind: FieldTextarea, Required: true, MinChars: 50, MinWords: 10},
	}}

	res := Validate(map[string]string{"whatLearned": "   "}, spec)
	if res.Valid() {
		t.Fatal("expected invalid")
	}
	errs := res.Errors("whatLearned")
	if len(errs) != 1 {
		t.Fatalf("required-empty must short-circuit, got %v", errs)
	}
	if errs[0] != "this field is required" {
		t.Errorf("message = %q", errs[0])
	}
}

func TestValidateOptionalEmptyPasses(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "extra", Kind: FieldText, Required: false, MinChars: 20},
	}}
	res := Validate(map[string]string{}, spec)
	if !res.Valid() {
		t.Errorf("optional empty field failed: %v", res.FieldErrors)
	}
}

func TestValidateMinCharsMessageHasCounts(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "answer", Kind: FieldTextarea, Required: true, MinChars: 50},
	}}
	res := Validate(map[string]string{"answer": "prea scurt"}, spec)
	if res.Valid() {
		t.Fatal("expected invalid")
	}
	msg := res.Errors("answer")[0]
	if !strings.Contains(msg, "50") || !strings.Contains(msg, "10") {
		t.Errorf("message must carry required and actual counts: %q", msg)
	}
}

func TestValidateMinCharsCountsRunesAfterTrim(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "a", Required: true, MinChars: 5},
	}}
	// 5 multi-byte runes surrounded by whitespace.
	res := Validate(map[string]string{"a": "  țărâm  "}, spec)
	if !res.Valid() {
		t.Errorf("5 runes should satisfy minChars=5: %v", res.FieldErrors)
	}
}

func TestValidateMinWords(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "a", Required: true, MinWords: 3},
	}}

	tests := []struct {
		value string
		valid bool
	}{
		{"unu doi trei", true},
		{"unu  doi   trei", true}, // runs of whitespace are one separator
		{"unu doi", false},
		{"unu", false},
	}
	for _, tt := range tests {
		res := Validate(map[string]string{"a": tt.value}, spec)
		if res.Valid() != tt.valid {
			t.Errorf("value %q: valid = %v, want %v (%v)", tt.value, res.Valid(), tt.valid, res.FieldErrors)
		}
	}
}

func TestValidateMustIncludeAny(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "a", Required: true, MustIncludeAny: []string{"RAM", "memorie"}},
	}}

	// One match suffices, case-insensitive.
	res := Validate(map[string]string{"a": "am invatat despre ram si procesor"}, spec)
	if !res.Valid() {
		t.Errorf("any-match failed: %v", res.FieldErrors)
	}

	// Fails only when none match.
	res = Validate(map[string]string{"a": "am invatat despre procesor"}, spec)
	if res.Valid() {
		t.Error("expected failure when no keyword matches")
	}
	if len(res.Errors("a")) != 1 {
		t.Errorf("mustIncludeAny reports a single error, got %v", res.Errors("a"))
	}
}

func TestValidateMustIncludeAllReportsEachMissing(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "a", Required: true, MustIncludeAll: []string{"RAM", "HDD", "volatil"}},
	}}
	res := Validate(map[string]string{"a": "doar despre ram am scris"}, spec)
	if res.Valid() {
		t.Fatal("expected invalid")
	}
	errs := res.Errors("a")
	if len(errs) != 2 {
		t.Fatalf("want one error per missing keyword, got %v", errs)
	}
	joined := strings.Join(errs, "; ")
	if !strings.Contains(joined, "HDD") || !strings.Contains(joined, "volatil") {
		t.Errorf("missing keywords not named: %v", errs)
	}
}

func TestValidateURLPattern(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "project", Kind: FieldURL, Required: true, URLPattern: "scratch.mit.edu"},
	}}

	tests := []struct {
		value string
		valid bool
	}{
		{"https://scratch.mit.edu/projects/123456", true},
		{"http://SCRATCH.MIT.EDU/projects/9", true},
		{"https://example.com/projects/123", false},
		{"not a url", false},
		{"ftp://scratch.mit.edu/x", false},
	}
	for _, tt := range tests {
		res := Validate(map[string]string{"project": tt.value}, spec)
		if res.Valid() != tt.valid {
			t.Errorf("value %q: valid = %v, want %v (%v)", tt.value, res.Valid(), tt.valid, res.FieldErrors)
		}
	}
}

func TestValidateAccumulatesAcrossFields(t *testing.T) {
	spec := Spec{Fields: []Field{
		{Name: "a", Required: true},
		{Name: "b", Required: true, MinChars: 10},
	}}
	res := Validate(map[string]string{"b": "scurt"}, spec)
	if len(res.FieldErrors) != 2 {
		t.Errorf("expected errors on both fields: %v", res.FieldErrors)
	}
}
