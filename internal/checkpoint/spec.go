// Package checkpoint validates lesson checkpoint submissions and records
// completion. A checkpoint is the free-text form a learner must pass before
// a lesson counts as finished; the field specification comes from lesson
// content and is treated as read-only input.
package checkpoint

// FieldKind is the input widget class for a checkpoint field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldURL      FieldKind = "url"
)

// Field is one entry of a checkpoint field specification.
type Field struct {
	Name        string    `json:"name"`
	Kind        FieldKind `json:"type"`
	Label       string    `json:"label,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`

	// MinChars is the minimum trimmed length; 0 disables the check.
	MinChars int `json:"minChars,omitempty"`

	// MinWords is the minimum count of whitespace-delimited tokens.
	MinWords int `json:"minWords,omitempty"`

	// MustIncludeAny passes when at least one keyword appears
	// (case-insensitive substring match).
	MustIncludeAny []string `json:"mustIncludeAny,omitempty"`

	// MustIncludeAll requires every keyword; each missing one is reported.
	MustIncludeAll []string `json:"mustIncludeAll,omitempty"`

	// URLPattern requires the value to parse as a URL whose host contains
	// this substring. Only meaningful for FieldURL.
	URLPattern string `json:"urlPattern,omitempty"`
}

// Spec is an ordered checkpoint field specification.
type Spec struct {
	Fields []Field `json:"fields"`
}
