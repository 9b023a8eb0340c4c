package grading

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mviorel/learninghub/internal/store"
)

// StudentInfo identifies the learner in an export payload.
type StudentInfo struct {
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
}

// LessonInfo identifies the graded lesson.
type LessonInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AnswerItem is one flattened question from the graded lesson. Free-text
// answers carry the learner's verbatim text and are flagged for teacher
// evaluation; the grade never scores them automatically.
type AnswerItem struct {
	QuestionID                string `json:"questionId"`
	Question                  string `json:"question"`
	Answered                  bool   `json:"answered"`
	IsCorrect                 bool   `json:"isCorrect"`
	UserAnswer                string `json:"userAnswer,omitempty"`
	CorrectAnswer             string `json:"correctAnswer,omitempty"`
	RequiresTeacherEvaluation bool   `json:"requiresTeacherEvaluation,omitempty"`
}

// Summary is the numeric overview teachers scan before the item list.
type Summary struct {
	AtomicCorrect   int     `json:"atomicCorrect"`
	AtomicTotal     int     `json:"atomicTotal"`
	PracticeCorrect int     `json:"practiceCorrect"`
	PracticeTotal   int     `json:"practiceTotal"`
	XPMultiplier    float64 `json:"xpMultiplier"`
}

// Meta is export provenance. The fingerprint is a human-readable label for
// matching files to sessions, not a security token.
type Meta struct {
	ExportedAt  string `json:"exportedAt"`
	Fingerprint string `json:"fingerprint"`
}

// Payload is the checksummed body of an export bundle.
type Payload struct {
	Meta          Meta         `json:"_meta"`
	Student       StudentInfo  `json:"student"`
	Lesson        LessonInfo   `json:"lesson"`
	Grading       Breakdown    `json:"grading"`
	Summary       Summary      `json:"summary"`
	AtomicItems   []AnswerItem `json:"atomicItems"`
	PracticeItems []AnswerItem `json:"practiceItems"`
}

// Security wraps the payload digest. The checksum covers the payload alone,
// never this wrapper.
type Security struct {
	Checksum  string `json:"checksum"`
	Algorithm string `json:"algorithm"`
}

// Bundle is the complete export document.
type Bundle struct {
	Payload  Payload  `json:"payload"`
	Security Security `json:"security"`
}

// Input collects everything an export needs. Atomic is the theory sub-score;
// Practice is nil when the practice section was never attempted.
type Input struct {
	Student       StudentInfo
	Lesson        LessonInfo
	Atomic        SubScore
	Practice      *SubScore
	XPMultiplier  float64
	AtomicItems   []AnswerItem
	PracticeItems []AnswerItem
}

// Exporter builds checksummed grade bundles and records each export in the
// audit trail.
type Exporter struct {
	events   store.ExportRepo
	clientID string
	now      func() time.Time
	newID    func() string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides the export timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithIDSource overrides the random fragment source for fingerprints.
func WithIDSource(newID func() string) Option {
	return func(e *Exporter) { e.newID = newID }
}

// NewExporter creates an Exporter. events may be nil to skip the audit trail
// (verification tooling has no store). clientID labels the producing device
// inside fingerprints; only its first characters are used.
func NewExporter(events store.ExportRepo, clientID string, opts ...Option) *Exporter {
	e := &Exporter{
		events:   events,
		clientID: clientID,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export compiles the grade, assembles the payload, checksums it and appends
// an audit row. The returned bundle is ready to be written to disk.
func (e *Exporter) Export(ctx context.Context, in Input) (Bundle, error) {
	now := e.now().UTC()
	breakdown := Compile(in.Atomic, in.Practice)

	summary := Summary{
		AtomicCorrect: in.Atomic.Correct,
		AtomicTotal:   in.Atomic.Total,
		XPMultiplier:  in.XPMultiplier,
	}
	if in.Practice != nil {
		summary.PracticeCorrect = in.Practice.Correct
		summary.PracticeTotal = in.Practice.Total
	}

	payload := Payload{
		Meta: Meta{
			ExportedAt:  now.Format(time.RFC3339),
			Fingerprint: e.fingerprint(now),
		},
		Student:       in.Student,
		Lesson:        in.Lesson,
		Grading:       breakdown,
		Summary:       summary,
		AtomicItems:   in.AtomicItems,
		PracticeItems: in.PracticeItems,
	}

	checksum, err := Checksum(payload)
	if err != nil {
		return Bundle{}, fmt.Errorf("export %s: %w", in.Lesson.ID, err)
	}

	bundle := Bundle{
		Payload:  payload,
		Security: Security{Checksum: checksum, Algorithm: Algorithm},
	}

	if e.events != nil {
		err := e.events.Append(ctx, store.ExportEventData{
			ProfileID:   in.Student.ProfileID,
			LessonID:    in.Lesson.ID,
			Grade:       breakdown.Grade,
			Checksum:    checksum,
			Fingerprint: payload.Meta.Fingerprint,
		})
		if err != nil {
			return Bundle{}, fmt.Errorf("record export event: %w", err)
		}
	}

	return bundle, nil
}

// fingerprint builds the session label: timestamp, random fragment, truncated
// client id.
func (e *Exporter) fingerprint(now time.Time) string {
	return fmt.Sprintf("%d-%s-%s", now.Unix(), head(e.newID(), 8), head(e.clientID, 6))
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
