// Package store persists settled job results in SQLite.
//
// Each record holds the exact envelope bytes the codec produced together
// with decoded metadata (dtype, shape, arithmetic mode) and the envelope's
// content digest. The envelope column is authoritative: the metadata exists
// only for querying, and readers that need values re-decode the blob.
//
// Writes are idempotent by job ID, so replays of the same settlement never
// produce duplicate rows.
package store
