package progress

import (
	"encoding/json"
	"fmt"
)

// Current envelope versions per namespace document.
const (
	CompletionVersion = 1
	QuizVersion       = 1
)

// envelope wraps every persisted document with an explicit schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// decodeDocument unwraps raw bytes into the inner document payload.
//
// It is total by contract: missing bytes, corrupt JSON, or a version newer
// than this build all degrade to (nil, recovered) rather than an error, so
// callers always proceed from a valid "no history" state. Version 0 is the
// legacy layout where the map was stored bare, without an envelope; it
// migrates by reading the whole document as data.
func decodeDocument(raw []byte, current int) (data json.RawMessage, recovered bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, true
	}

	switch {
	case env.Version == current:
		return env.Data, false
	case env.Version == 0 && env.Data == nil:
		// Legacy bare document: the whole blob is the data. If it is not
		// a JSON object the subsequent typed decode falls back to empty.
		return raw, false
	case env.Version < current:
		// Older envelope versions decode with the same shape today;
		// migration steps slot in here as versions accrue.
		return env.Data, false
	default:
		// Written by a newer build. Refusing to guess beats misreading.
		return nil, true
	}
}

func encodeDocument(version int, data any) ([]byte, error) {
	inner, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	raw, err := json.Marshal(envelope{Version: version, Data: inner})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return raw, nil
}

// decodeCompletions parses a checkpoints document. Corruption yields an
// empty set with recovered=true, never an error.
func decodeCompletions(raw []byte) (CompletionSet, bool) {
	data, recovered := decodeDocument(raw, CompletionVersion)
	set := make(CompletionSet)
	if data == nil {
		return set, recovered
	}
	if err := json.Unmarshal(data, &set); err != nil {
		return make(CompletionSet), true
	}
	return set, recovered
}

// decodeQuiz parses a quiz document with the same tolerance.
func decodeQuiz(raw []byte) (QuizState, bool) {
	data, recovered := decodeDocument(raw, QuizVersion)
	state := make(QuizState)
	if data == nil {
		return state, recovered
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return make(QuizState), true
	}
	return state, recovered
}
