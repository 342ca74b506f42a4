// Package payload defines the JSON-adjacent transport representation of
// RitualVector envelopes: the base16 embedding used in HTTP request and
// response bodies, and the job records exchanged with inference services.
//
// The envelope bytes inside a payload are exactly the bytes the codec
// produced; this layer adds hex framing and JSON field structure, never
// binary-format logic of its own.
package payload

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Envelope is an encoded vector envelope as carried inside JSON bodies:
// a 0x-prefixed base16 string on the wire, raw bytes in memory.
type Envelope []byte

// MarshalJSON encodes the envelope as a 0x-prefixed hex JSON string.
func (e Envelope) MarshalJSON() ([]byte, error) {
	return json.Marshal("0x" + hex.EncodeToString(e))
}

// UnmarshalJSON decodes a hex JSON string, with or without the 0x prefix.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := ParseHex(s)
	if err != nil {
		return err
	}
	*e = raw
	return nil
}

// String returns the 0x-prefixed hex form.
func (e Envelope) String() string {
	return "0x" + hex.EncodeToString(e)
}

// ParseHex decodes a base16 envelope string, accepting an optional 0x
// prefix.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex envelope: %w", err)
	}
	return raw, nil
}

// JobStatus is the lifecycle state of a job record.
type JobStatus string

const (
	JobStatusSuccess JobStatus = "success"
	JobStatusFailed  JobStatus = "failed"
)

// JobRequest is the body of a job submission: an envelope computed by an
// inference workflow, to be validated and persisted for settlement. A zero
// ID asks the service to assign one.
type JobRequest struct {
	ID     uuid.UUID `json:"id,omitempty"`
	Output Envelope  `json:"output"`
}

// JobResult is the stored outcome of a job: the output envelope plus its
// content digest, which correlates the off-chain record with the on-chain
// copy of the same bytes.
type JobResult struct {
	ID     uuid.UUID `json:"id"`
	Status JobStatus `json:"status"`
	Output Envelope  `json:"output,omitempty"`
	Digest string    `json:"digest,omitempty"`
	Error  string    `json:"error,omitempty"`
}
