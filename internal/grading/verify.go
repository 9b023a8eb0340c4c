package grading

import (
	"encoding/json"
	"fmt"
)

// VerifyError reports a failed integrity check. It says only that the payload
// changed since export, never what changed.
type VerifyError struct {
	Expected   string
	Calculated string
}

func (e *VerifyError) Error() string {
	return "checksum mismatch: payload was altered after export"
}

// Verify recomputes the digest over the bundle's payload and compares it to
// the attached checksum. The payload is taken as raw JSON so verification
// covers exactly the bytes the student's file contains, not a re-typed view.
func Verify(raw []byte) error {
	var bundle struct {
		Payload  json.RawMessage `json:"payload"`
		Security Security        `json:"security"`
	}
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("parse bundle: %w", err)
	}
	if bundle.Payload == nil || bundle.Security.Checksum == "" {
		return fmt.Errorf("invalid structure: missing payload or security")
	}

	var generic any
	if err := json.Unmarshal(bundle.Payload, &generic); err != nil {
		return fmt.Errorf("parse payload: %w", err)
	}
	calculated, err := Checksum(generic)
	if err != nil {
		return err
	}
	if calculated != bundle.Security.Checksum {
		return &VerifyError{Expected: bundle.Security.Checksum, Calculated: calculated}
	}
	return nil
}
