package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritual-net/infernet-go/internal/vector"
)

// Record is one stored job result.
type Record struct {
	ID         string
	Digest     string
	DType      string
	Shape      []int
	FixedPoint bool
	Decimals   uint8
	Envelope   []byte
}

// NewRecord builds a Record by decoding the envelope, so stored metadata can
// never disagree with the payload. The envelope must be a valid encoding;
// generic-int payloads are not accepted for storage.
func NewRecord(id string, envelope []byte) (*Record, error) {
	v, mode, err := vector.Decode(envelope)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", id, err)
	}
	return &Record{
		ID:         id,
		Digest:     vector.EnvelopeDigest(envelope),
		DType:      v.DType.String(),
		Shape:      v.Shape,
		FixedPoint: mode.FixedPoint,
		Decimals:   mode.Decimals,
		Envelope:   envelope,
	}, nil
}

// WriteResult inserts a result record. Uses ON CONFLICT(id) DO NOTHING for
// idempotency - replaying the same job ID is silently ignored.
func (s *Store) WriteResult(ctx context.Context, rec *Record) error {
	shapeJSON, err := json.Marshal(rec.Shape)
	if err != nil {
		return fmt.Errorf("write result: marshal shape: %w", err)
	}

	fixed := 0
	if rec.FixedPoint {
		fixed = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results
		(id, digest, dtype, shape, fixed_point, decimals, envelope)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Digest,
		rec.DType,
		string(shapeJSON),
		fixed,
		rec.Decimals,
		rec.Envelope,
	)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
