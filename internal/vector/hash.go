package vector

import (
	"crypto/sha256"
	"encoding/hex"
)

// DomainEnvelope is the domain prefix for envelope content digests. The
// version suffix enables future algorithm migration.
const DomainEnvelope = "ritual/vector/v1"

// EnvelopeDigest computes the content-addressed digest of an encoded
// envelope: SHA256(domain + 0x00 + envelope), hex-encoded. The null byte
// separator prevents domain/data boundary ambiguity.
//
// The digest is stable across restarts and hosts, so it serves as the
// storage key for settled results and as a correlation ID between the
// off-chain and on-chain copies of the same payload.
func EnvelopeDigest(envelope []byte) string {
	h := sha256.New()
	h.Write([]byte(DomainEnvelope))
	h.Write([]byte{0x00})
	h.Write(envelope)
	return hex.EncodeToString(h.Sum(nil))
}

// VectorDigest encodes a vector in native mode and digests the result.
// Returns an error when the vector cannot be encoded.
func VectorDigest(v *RitualVector) (string, error) {
	envelope, err := Encode(v, Native)
	if err != nil {
		return "", err
	}
	return EnvelopeDigest(envelope), nil
}
