// Package vector implements the RitualVector wire codec: a self-describing
// binary envelope carrying an N-dimensional numeric tensor together with its
// element type and shape.
//
// The same byte string serves two transports: it is passed verbatim as a
// bytes-typed ABI parameter in on-chain settlement calls, and it is embedded
// (base16-encoded) in JSON bodies exchanged with off-chain inference
// services. The codec therefore supports two arithmetic modes: Native
// (IEEE-754 / integer passthrough) and fixed-point (scaled signed integers
// in 32-byte EVM words, since smart contracts cannot do floating point).
//
// Key design constraints:
//   - All multi-byte integers are big-endian on the wire
//   - Every operation is a pure function: no I/O, no logging, no retries
//   - Decode is all-or-nothing; it never returns a partially valid vector
//   - The DataType table is the single source of truth for widths and
//     classification; no other component hard-codes a scalar width
package vector
