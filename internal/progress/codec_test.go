package progress

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeCompletionsEmpty(t *testing.T) {
	set, recovered := decodeCompletions(nil)
	if recovered {
		t.Error("nil bytes are valid no-history, not corruption")
	}
	if len(set) != 0 {
		t.Errorf("len = %d", len(set))
	}
}

func TestDecodeCompletionsCorrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated json", `{"version":1,"data":{"l1":`},
		{"not json at all", `<<<garbage>>>`},
		{"wrong data shape", `{"version":1,"data":[1,2,3]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, recovered := decodeCompletions([]byte(tt.raw))
			if !recovered {
				t.Error("expected recovered=true")
			}
			if len(set) != 0 {
				t.Errorf("expected empty default, got %d records", len(set))
			}
		})
	}
}

func TestDecodeCompletionsFutureVersion(t *testing.T) {
	raw := `{"version":99,"data":{"l1":{"completed":true}}}`
	set, recovered := decodeCompletions([]byte(raw))
	if !recovered {
		t.Error("future version must fall back to defaults")
	}
	if len(set) != 0 {
		t.Errorf("future-version data must not be interpreted, got %d records", len(set))
	}
}

func TestDecodeCompletionsLegacyBareMap(t *testing.T) {
	// The dynamic original stored the map directly, with no envelope.
	raw := `{"lectia1":{"completed":true,"completedAt":"2026-01-19T10:00:00Z"}}`
	set, recovered := decodeCompletions([]byte(raw))
	if recovered {
		t.Error("legacy layout is migrated, not recovered")
	}
	if !set["lectia1"].Completed {
		t.Error("legacy record lost in migration")
	}
}

func TestCompletionsRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	in := CompletionSet{
		"l1": {Completed: true, CompletedAt: at, Fields: map[string]string{"whatLearned": "despre RAM"}},
	}

	raw, err := encodeDocument(CompletionVersion, in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if env.Version != CompletionVersion {
		t.Errorf("version = %d", env.Version)
	}

	out, recovered := decodeCompletions(raw)
	if recovered {
		t.Error("round trip flagged as recovered")
	}
	got := out["l1"]
	if !got.Completed || !got.CompletedAt.Equal(at) || got.Fields["whatLearned"] != "despre RAM" {
		t.Errorf("got %+v", got)
	}
}

func TestQuizRoundTripKeepsUnlockHistory(t *testing.T) {
	state := make(QuizState)
	state.Set("l1", "q1", QuizAttemptRecord{
		Attempts: 0,
		Locked:   false,
		UnlockHistory: []UnlockNote{
			{Text: "am confundat RAM cu HDD", At: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		},
	})

	raw, err := encodeDocument(QuizVersion, state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, recovered := decodeQuiz(raw)
	if recovered {
		t.Error("round trip flagged as recovered")
	}
	rec := out.Record("l1", "q1")
	if rec.LastUnlockText() != "am confundat RAM cu HDD" {
		t.Errorf("unlock history lost: %+v", rec)
	}
}

func TestQuizStateSetAllocates(t *testing.T) {
	state := make(QuizState)
	state.Set("l1", "q1", QuizAttemptRecord{Attempts: 2})
	state.Set("l1", "q2", QuizAttemptRecord{Attempts: 1})

	if state.Record("l1", "q1").Attempts != 2 {
		t.Error("q1 lost")
	}
	if state.Record("l1", "q2").Attempts != 1 {
		t.Error("q2 lost")
	}
	if got := state.Record("l2", "q1"); got.Attempts != 0 || got.Correct || got.Locked {
		t.Errorf("missing record not zero-valued: %+v", got)
	}
}
