package grading

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Algorithm names the digest used for export checksums.
const Algorithm = "SHA-256"

// CanonicalJSON serializes v into the canonical form the checksum is defined
// over: object keys sorted, no insignificant whitespace. The value is pushed
// through a generic decode so struct field order and json tag quirks cannot
// leak into the bytes; encoding/json emits map keys in sorted order.
func CanonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	out, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("canonicalize: %w", err)
	}
	return out, nil
}

// Checksum computes the hex SHA-256 digest of v's canonical serialization.
func Checksum(v any) (string, error) {
	canon, err := CanonicalJSON(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
