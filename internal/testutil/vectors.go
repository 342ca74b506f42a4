// Package testutil provides deterministic vector builders for tests.
//
// All builders take an explicit *rand.Rand so a test controls its own seed
// and failures reproduce exactly. Generated float elements are chosen to be
// exactly representable at the dtype's wire width, so native round trips
// compare with Equal rather than a tolerance.
package testutil

import (
	"math/rand"

	"github.com/ritual-net/infernet-go/internal/vector"
)

// NewRand returns a deterministic source for a test.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Shape generates a random shape of up to maxDims dimensions with at most
// maxDim elements each. Dimensions of 1 and the empty (scalar) shape occur
// naturally.
func Shape(r *rand.Rand, maxDims, maxDim int) vector.Shape {
	dims := r.Intn(maxDims + 1)
	shape := make(vector.Shape, dims)
	for i := range shape {
		shape[i] = 1 + r.Intn(maxDim)
	}
	return shape
}

// Vector builds a random vector of the given dtype and shape with elements
// drawn from the dtype's exactly-representable domain.
func Vector(r *rand.Rand, dtype vector.DataType, shape vector.Shape) *vector.RitualVector {
	count := int(shape.ElemCount())

	var values vector.Values
	switch {
	case dtype.IsFloat():
		out := make(vector.Float64s, count)
		for i := range out {
			out[i] = exactFloat(r, dtype)
		}
		values = out
	case dtype.IsComplex():
		out := make(vector.Complex128s, count)
		half := vector.Float64
		if dtype == vector.Complex64 {
			half = vector.Float32
		}
		for i := range out {
			out[i] = complex(exactFloat(r, half), exactFloat(r, half))
		}
		values = out
	case dtype.IsBool():
		out := make(vector.Bools, count)
		for i := range out {
			out[i] = r.Intn(2) == 1
		}
		values = out
	default:
		out := make(vector.Int64s, count)
		for i := range out {
			out[i] = randInt(r, dtype)
		}
		values = out
	}

	v, err := vector.New(dtype, shape, values)
	if err != nil {
		panic(err)
	}
	return v
}

// exactFloat draws a value exactly representable at the dtype's width:
// dyadic rationals for float32/float64, small integers for the 16-bit
// formats (float16 carries 11 significand bits, bfloat16 only 8).
func exactFloat(r *rand.Rand, dtype vector.DataType) float64 {
	switch dtype {
	case vector.Float16:
		return float64(r.Intn(2049) - 1024)
	case vector.BFloat16:
		return float64(r.Intn(257) - 128)
	default:
		return float64(r.Intn(1<<21)-1<<20) / 256
	}
}

// randInt draws a value inside the dtype's range.
func randInt(r *rand.Rand, dtype vector.DataType) int64 {
	switch dtype {
	case vector.Int8:
		return int64(r.Intn(256) - 128)
	case vector.Uint8:
		return int64(r.Intn(256))
	case vector.Int16:
		return int64(r.Intn(1<<16) - 1<<15)
	case vector.Int32:
		return int64(r.Int31()) - 1<<30
	default:
		return r.Int63() - 1<<62
	}
}
