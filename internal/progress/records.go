// Package progress owns the persisted progress record shapes and their
// versioned serialization. Every document stored by the gating subsystem
// round-trips through this package; the store itself never interprets bytes.
package progress

import "time"

// CompletionRecord marks a lesson finished for one profile. Once Completed is
// true the record is immutable except through an explicit reset; nothing in
// normal operation reverts it.
type CompletionRecord struct {
	Completed   bool              `json:"completed"`
	CompletedAt time.Time         `json:"completedAt"`
	Fields      map[string]string `json:"fields,omitempty"`
}

// UnlockNote is one audit entry from unlocking a locked question.
type UnlockNote struct {
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// QuizAttemptRecord tracks graded attempts for one question of one lesson.
// Invariant: Locked implies Attempts reached the lock threshold without a
// correct answer; Correct and Locked are never both true.
type QuizAttemptRecord struct {
	Attempts int  `json:"attempts"`
	Correct  bool `json:"correct"`
	Locked   bool `json:"locked"`

	// UnlockHistory keeps every explanation ever given, oldest first.
	// Unlocking resets Attempts but never erases history.
	UnlockHistory []UnlockNote `json:"unlockHistory,omitempty"`
}

// LastUnlockText returns the most recent unlock explanation, or "".
func (r QuizAttemptRecord) LastUnlockText() string {
	if len(r.UnlockHistory) == 0 {
		return ""
	}
	return r.UnlockHistory[len(r.UnlockHistory)-1].Text
}

// CompletionSet is the checkpoints namespace document: lesson id → record.
type CompletionSet map[string]CompletionRecord

// QuizState is the quiz namespace document: lesson id → question id → record.
type QuizState map[string]map[string]QuizAttemptRecord

// Record returns the attempt record for (lessonID, questionID), zero-valued
// if absent.
func (q QuizState) Record(lessonID, questionID string) QuizAttemptRecord {
	return q[lessonID][questionID]
}

// Set stores rec under (lessonID, questionID), allocating as needed.
func (q QuizState) Set(lessonID, questionID string, rec QuizAttemptRecord) {
	byQuestion := q[lessonID]
	if byQuestion == nil {
		byQuestion = make(map[string]QuizAttemptRecord)
		q[lessonID] = byQuestion
	}
	byQuestion[questionID] = rec
}
