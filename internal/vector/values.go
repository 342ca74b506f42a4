package vector

// Values is a sealed interface over the typed flat buffers a vector can
// carry. Only Float64s, Int64s, Bools, and Complex128s implement it. The
// carrier is always the widest Go type of its class; quantization to the
// dtype's wire width happens inside the scalar codec, never in the carrier.
type Values interface {
	Len() int
	values() // sealed
}

// Float64s carries elements of the floating dtypes (float16, bfloat16,
// float32, float64).
type Float64s []float64

func (v Float64s) Len() int { return len(v) }
func (Float64s) values()    {}

// Int64s carries elements of the integer dtypes (int8, uint8, int16, int32,
// int64, and the generic int alias on decode).
type Int64s []int64

func (v Int64s) Len() int { return len(v) }
func (Int64s) values()    {}

// Bools carries elements of the bool dtype.
type Bools []bool

func (v Bools) Len() int { return len(v) }
func (Bools) values()    {}

// Complex128s carries elements of the complex dtypes (complex64,
// complex128).
type Complex128s []complex128

func (v Complex128s) Len() int { return len(v) }
func (Complex128s) values()    {}

// carrierMatches reports whether the carrier kind is legal for the dtype
// class. Nil values are legal only for zero-element vectors and are checked
// separately.
func carrierMatches(d DataType, v Values) bool {
	switch v.(type) {
	case Float64s:
		return d.IsFloat()
	case Int64s:
		return d.IsInteger()
	case Bools:
		return d.IsBool()
	case Complex128s:
		return d.IsComplex()
	default:
		return false
	}
}
