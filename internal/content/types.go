// Package content loads lesson module manifests from disk. Manifests are
// read-only input to the gating subsystem: they supply the lesson ordering,
// the checkpoint field specifications and the quiz questions, and are
// validated against an embedded JSON Schema before use.
package content

import (
	"github.com/mviorel/learninghub/internal/access"
	"github.com/mviorel/learninghub/internal/checkpoint"
)

// Question kinds. Atomic questions score the theory sub-grade, practice
// questions the practice sub-grade.
const (
	KindAtomic   = "atomic"
	KindPractice = "practice"
)

// Question is one quiz item of a lesson. A question with no options and no
// answer is a written item: it is never auto-graded and goes to the teacher
// for evaluation.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Kind    string   `json:"kind,omitempty"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// Written reports whether the question requires teacher evaluation.
func (q Question) Written() bool {
	return len(q.Options) == 0 && q.Answer == ""
}

// ScoreKind returns the question's scoring category, defaulting to atomic.
func (q Question) ScoreKind() string {
	if q.Kind == KindPractice {
		return KindPractice
	}
	return KindAtomic
}

// Lesson is one entry of a module manifest.
type Lesson struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Checkpoint checkpoint.Spec `json:"checkpoint"`
	Questions  []Question      `json:"questions,omitempty"`
}

// Question returns the lesson's question by id.
func (l Lesson) Question(id string) (Question, bool) {
	for _, q := range l.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Module is a parsed manifest: an ordered sequence of lessons.
type Module struct {
	Module  string   `json:"module"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// Chain returns the lesson ordering for the accessibility resolver.
func (m Module) Chain() access.Chain {
	chain := make(access.Chain, len(m.Lessons))
	for i, l := range m.Lessons {
		chain[i] = l.ID
	}
	return chain
}

// Lesson returns the module's lesson by id.
func (m Module) Lesson(id string) (Lesson, bool) {
	for _, l := range m.Lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}
