package session

import (
	"context"
	"strings"
	"testing"

	"github.com/mviorel/learninghub/internal/attempts"
	"github.com/mviorel/learninghub/internal/checkpoint"
	"github.com/mviorel/learninghub/internal/content"
	"github.com/mviorel/learninghub/internal/progress"
)

type memStateRepo struct {
	rows map[string][]byte
}

func newMemStateRepo() *memStateRepo {
	return &memStateRepo{rows: make(map[string][]byte)}
}

func (m *memStateRepo) Read(_ context.Context, profileID, namespace string) ([]byte, error) {
	return m.rows[profileID+"/"+namespace], nil
}

func (m *memStateRepo) Write(_ context.Context, profileID, namespace string, data []byte) error {
	m.rows[profileID+"/"+namespace] = data
	return nil
}

func (m *memStateRepo) Delete(_ context.Context, profileID, namespace string) error {
	delete(m.rows, profileID+"/"+namespace)
	return nil
}

func (m *memStateRepo) DeleteProfile(_ context.Context, profileID string) error {
	for k := range m.rows {
		if strings.HasPrefix(k, profileID+"/") {
			delete(m.rows, k)
		}
	}
	return nil
}

var reportLesson = content.Lesson{
	ID:    "l1",
	Title: "Variabile",
	Checkpoint: checkpoint.Spec{
		Fields: []checkpoint.Field{
			{Name: "whatLearned", Kind: checkpoint.FieldTextarea, Label: "Ce ai invatat?"},
		},
	},
	Questions: []content.Question{
		{ID: "q1", Text: "2+2?", Options: []string{"3", "4"}, Answer: "4"},
		{ID: "q2", Text: "3*3?", Options: []string{"6", "9"}, Answer: "9"},
		{ID: "p1", Text: "Aplica formula.", Kind: content.KindPractice, Options: []string{"a", "b"}, Answer: "a"},
	},
}

func newReportSession(t *testing.T) *Session {
	t.Helper()
	tracker := progress.NewTracker(newMemStateRepo(), "p1")
	return &Session{
		ProfileID: "p1",
		Tracker:   tracker,
		Engine:    checkpoint.NewEngine(tracker),
		Gate:      attempts.NewGate(tracker, attempts.DefaultConfig()),
	}
}

func TestReportScoresAndItems(t *testing.T) {
	s := newReportSession(t)
	ctx := context.Background()

	s.Gate.RecordAttempt(ctx, "l1", "q1", true)
	s.Gate.RecordAttempt(ctx, "l1", "q2", false)
	s.Gate.RecordAttempt(ctx, "l1", "q2", true)
	s.Gate.RecordAttempt(ctx, "l1", "p1", true)

	out, err := s.Engine.Submit(ctx, "l1", map[string]string{"whatLearned": "despre variabile"}, reportLesson.Checkpoint)
	if err != nil || out.Status != checkpoint.StatusCompleted {
		t.Fatalf("submit: %v %v", out.Status, err)
	}

	in, err := s.Report(ctx, reportLesson)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if in.Atomic.Correct != 2 || in.Atomic.Total != 2 {
		t.Errorf("atomic = %+v", in.Atomic)
	}
	if in.Practice == nil || in.Practice.Correct != 1 || in.Practice.Total != 1 {
		t.Errorf("practice = %+v", in.Practice)
	}
	if len(in.AtomicItems) != 2 {
		t.Fatalf("atomic items = %d", len(in.AtomicItems))
	}

	// Practice holds the scored item plus the checkpoint written answer.
	if len(in.PracticeItems) != 2 {
		t.Fatalf("practice items = %+v", in.PracticeItems)
	}
	written := in.PracticeItems[1]
	if !written.RequiresTeacherEvaluation || written.UserAnswer != "despre variabile" {
		t.Errorf("written item = %+v", written)
	}
	if written.Question != "Ce ai invatat?" {
		t.Errorf("written label = %q", written.Question)
	}
}

func TestReportPracticeNilWhenUntouched(t *testing.T) {
	s := newReportSession(t)
	ctx := context.Background()

	s.Gate.RecordAttempt(ctx, "l1", "q1", true)
	s.Gate.RecordAttempt(ctx, "l1", "q2", true)

	in, err := s.Report(ctx, reportLesson)
	if err != nil {
		t.Fatal(err)
	}
	if in.Practice != nil {
		t.Errorf("practice = %+v, want nil when never attempted", in.Practice)
	}
	if in.Atomic.Correct != 2 {
		t.Errorf("atomic = %+v", in.Atomic)
	}
}
