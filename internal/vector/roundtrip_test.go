package vector_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritual-net/infernet-go/internal/testutil"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// Generative round trips across every encodable dtype. Element values are
// exactly representable at each dtype's width, so decoded vectors compare
// with Equal.
func TestRandomNativeRoundTrips(t *testing.T) {
	dtypes := []vector.DataType{
		vector.Float32, vector.Float64, vector.Float16, vector.BFloat16,
		vector.Complex64, vector.Complex128,
		vector.Int8, vector.Uint8, vector.Int16, vector.Int32, vector.Int64,
		vector.Bool,
	}

	r := testutil.NewRand(1)
	for _, dtype := range dtypes {
		t.Run(dtype.String(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				v := testutil.Vector(r, dtype, testutil.Shape(r, 3, 5))

				envelope, err := vector.Encode(v, vector.Native)
				require.NoError(t, err)

				got, mode, err := vector.Decode(envelope)
				require.NoError(t, err)
				assert.False(t, mode.FixedPoint)
				assert.Equal(t, v.DType, got.DType)
				assert.Equal(t, v.Shape, got.Shape)
				assert.Equal(t, v.Values, got.Values)
			}
		})
	}
}

func TestRandomFixedPointRoundTrips(t *testing.T) {
	r := testutil.NewRand(2)
	const decimals = 6

	for i := 0; i < 50; i++ {
		v := testutil.Vector(r, vector.Float64, testutil.Shape(r, 2, 6))

		envelope, err := vector.Encode(v, vector.FixedPoint(decimals))
		require.NoError(t, err)

		got, mode, err := vector.Decode(envelope)
		require.NoError(t, err, "iteration %d", i)
		require.True(t, mode.FixedPoint)
		require.Equal(t, uint8(decimals), mode.Decimals)

		want := v.Values.(vector.Float64s)
		have := got.Values.(vector.Float64s)
		require.Len(t, have, len(want))
		for j := range want {
			assert.InDelta(t, want[j], have[j], 1e-6,
				fmt.Sprintf("iteration %d element %d", i, j))
		}
	}
}

// Decode of a flipped byte must fail cleanly or produce a structurally
// valid vector; it must never panic. Exercises the all-or-nothing decode
// guarantee against corrupted envelopes.
func TestCorruptedEnvelopeNeverPanics(t *testing.T) {
	r := testutil.NewRand(3)

	for i := 0; i < 100; i++ {
		v := testutil.Vector(r, vector.Float32, testutil.Shape(r, 2, 4))
		envelope, err := vector.Encode(v, vector.Native)
		require.NoError(t, err)

		pos := r.Intn(len(envelope))
		envelope[pos] ^= byte(1 + r.Intn(255))

		got, _, err := vector.Decode(envelope)
		if err == nil {
			require.NoError(t, got.Validate())
		}
	}
}
