package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches the requested key.
var ErrNotFound = errors.New("store: record not found")

// GetResult returns the record for a job ID, or ErrNotFound.
func (s *Store) GetResult(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, digest, dtype, shape, fixed_point, decimals, envelope
		FROM results WHERE id = ?
	`, id)
	return scanRecord(row)
}

// GetByDigest returns the first record whose envelope has the given content
// digest, or ErrNotFound. Multiple jobs may settle identical payloads; the
// oldest row wins.
func (s *Store) GetByDigest(ctx context.Context, digest string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, digest, dtype, shape, fixed_point, decimals, envelope
		FROM results WHERE digest = ?
		ORDER BY created_at ASC LIMIT 1
	`, digest)
	return scanRecord(row)
}

// ListResults returns up to limit records in insertion order.
func (s *Store) ListResults(ctx context.Context, limit int) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, digest, dtype, shape, fixed_point, decimals, envelope
		FROM results ORDER BY created_at ASC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return records, nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*Record, error) {
	var (
		rec       Record
		shapeJSON string
		fixed     int
	)
	err := row.Scan(&rec.ID, &rec.Digest, &rec.DType, &shapeJSON, &fixed, &rec.Decimals, &rec.Envelope)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}

	if err := json.Unmarshal([]byte(shapeJSON), &rec.Shape); err != nil {
		return nil, fmt.Errorf("scan result %s: shape column: %w", rec.ID, err)
	}
	rec.FixedPoint = fixed != 0
	return &rec, nil
}
