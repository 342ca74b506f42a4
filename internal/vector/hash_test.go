package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeDigestDeterministic(t *testing.T) {
	v, err := New(Int32, Shape{2}, Int64s{1, 2})
	require.NoError(t, err)
	envelope, err := Encode(v, Native)
	require.NoError(t, err)

	d1 := EnvelopeDigest(envelope)
	d2 := EnvelopeDigest(envelope)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64) // hex-encoded SHA-256
}

func TestEnvelopeDigestDistinguishesPayloads(t *testing.T) {
	a, err := New(Int32, Shape{2}, Int64s{1, 2})
	require.NoError(t, err)
	b, err := New(Int32, Shape{2}, Int64s{1, 3})
	require.NoError(t, err)

	ea, err := Encode(a, Native)
	require.NoError(t, err)
	eb, err := Encode(b, Native)
	require.NoError(t, err)

	assert.NotEqual(t, EnvelopeDigest(ea), EnvelopeDigest(eb))
}

func TestVectorDigest(t *testing.T) {
	v, err := New(Bool, Shape{1}, Bools{true})
	require.NoError(t, err)

	digest, err := VectorDigest(v)
	require.NoError(t, err)

	envelope, err := Encode(v, Native)
	require.NoError(t, err)
	assert.Equal(t, EnvelopeDigest(envelope), digest)
}

func TestVectorDigestRejectsGenericInt(t *testing.T) {
	v := &RitualVector{DType: Int, Shape: Shape{1}, Values: Int64s{1}}

	_, err := VectorDigest(v)
	require.Error(t, err)
	assert.True(t, IsUnsupportedDataType(err))
}
