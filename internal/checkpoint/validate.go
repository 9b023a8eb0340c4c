package checkpoint

import (
	"fmt"
	"net/url"
	"strings"
)

// Result is the outcome of validating submitted values against a Spec.
// Field errors are user-correctable data, not Go errors: they surface inline
// next to the offending field and are never fatal.
type Result struct {
	FieldErrors map[string][]string
}

// Valid reports whether the submission passed every rule.
func (r Result) Valid() bool {
	return len(r.FieldErrors) == 0
}

// Errors returns the messages for one field.
func (r Result) Errors(field string) []string {
	return r.FieldErrors[field]
}

func (r *Result) add(field, msg string) {
	if r.FieldErrors == nil {
		r.FieldErrors = make(map[string][]string)
	}
	r.FieldErrors[field] = append(r.FieldErrors[field], msg)
}

// Validate applies each field's rules to the submitted values. The
// required-but-empty case short-circuits the remaining checks for that
// field; all other rule failures accumulate.
func Validate(values map[string]string, spec Spec) Result {
	var res Result
	for _, f := range spec.Fields {
		validateField(&res, f, values[f.Name])
	}
	return res
}

func validateField(res *Result, f Field, value string) {
	trimmed := strings.TrimSpace(value)

	if f.Required && trimmed == "" {
		res.add(f.Name, "this field is required")
		return
	}
	if trimmed == "" {
		// Optional and empty: nothing else to check.
		return
	}

	if f.MinChars > 0 && len([]rune(trimmed)) < f.MinChars {
		res.add(f.Name, fmt.Sprintf(
			"needs at least %d characters (currently %d)",
			f.MinChars, len([]rune(trimmed)),
		))
	}

	if f.MinWords > 0 {
		words := countWords(trimmed)
		if words < f.MinWords {
			res.add(f.Name, fmt.Sprintf(
				"needs at least %d words (currently %d)",
				f.MinWords, words,
			))
		}
	}

	lower := strings.ToLower(trimmed)

	if len(f.MustIncludeAny) > 0 && !containsAny(lower, f.MustIncludeAny) {
		res.add(f.Name, fmt.Sprintf(
			"should mention at least one of: %s",
			strings.Join(f.MustIncludeAny, ", "),
		))
	}

	for _, kw := range f.MustIncludeAll {
		if !strings.Contains(lower, strings.ToLower(kw)) {
			res.add(f.Name, fmt.Sprintf("missing keyword: %s", kw))
		}
	}

	if f.URLPattern != "" {
		if msg := checkURL(trimmed, f.URLPattern); msg != "" {
			res.add(f.Name, msg)
		}
	}
}

// countWords counts whitespace-delimited tokens of length > 0.
func countWords(s string) int {
	return len(strings.Fields(s))
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func checkURL(value, hostPattern string) string {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "not a valid URL"
	}
	if !strings.Contains(strings.ToLower(u.Host), strings.ToLower(hostPattern)) {
		return fmt.Sprintf("URL should point to %s", hostPattern)
	}
	return ""
}
