package vector

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Scalar codec: per-dtype pack/unpack of exactly Width() bytes per element,
// big-endian, chosen for cross-platform and ABI-adjacent determinism.
//
// Floating elements quantize through the dtype's width on encode, so a
// decoded element is always exactly representable at that width. bfloat16
// truncates (keeps the top 16 bits of the float32 pattern) rather than
// rounding, matching how ML runtimes commonly store bfloat16.

// appendFloat appends the native encoding of f at dtype d.
func appendFloat(buf []byte, d DataType, f float64) []byte {
	switch d {
	case Float32:
		return binary.BigEndian.AppendUint32(buf, math.Float32bits(float32(f)))
	case Float64:
		return binary.BigEndian.AppendUint64(buf, math.Float64bits(f))
	case Float16:
		return binary.BigEndian.AppendUint16(buf, float16.Fromfloat32(float32(f)).Bits())
	default: // BFloat16
		return binary.BigEndian.AppendUint16(buf, uint16(math.Float32bits(float32(f))>>16))
	}
}

// decodeFloat reads one floating element of dtype d. The caller has already
// verified that Width() bytes remain.
func decodeFloat(data []byte, d DataType) float64 {
	switch d {
	case Float32:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(data)))
	case Float64:
		return math.Float64frombits(binary.BigEndian.Uint64(data))
	case Float16:
		return float64(float16.Frombits(binary.BigEndian.Uint16(data)).Float32())
	default: // BFloat16
		return float64(math.Float32frombits(uint32(binary.BigEndian.Uint16(data)) << 16))
	}
}

// quantize rounds f through dtype d's floating width, yielding the value a
// native-mode round trip would produce. Used when reconstructing floats from
// fixed-point words so that both modes agree on representable values.
func quantize(d DataType, f float64) float64 {
	switch d {
	case Float32:
		return float64(float32(f))
	case Float16:
		return float64(float16.Fromfloat32(float32(f)).Float32())
	case BFloat16:
		return float64(math.Float32frombits(math.Float32bits(float32(f)) & 0xFFFF0000))
	default: // Float64
		return f
	}
}

// intRange returns the inclusive value range of an integer dtype.
func intRange(d DataType) (min, max int64) {
	switch d {
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Uint8:
		return 0, math.MaxUint8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	default: // Int64
		return math.MinInt64, math.MaxInt64
	}
}

// appendInt appends the two's-complement encoding of v at dtype d. Values
// outside the dtype's range fail with MALFORMED_SCALAR; the codec never
// silently truncates an integer.
func appendInt(buf []byte, d DataType, v int64) ([]byte, error) {
	min, max := intRange(d)
	if v < min || v > max {
		return nil, newError(ErrCodeMalformedScalar, "value %d outside %s range [%d, %d]", v, d, min, max)
	}
	switch d {
	case Int8, Uint8:
		return append(buf, byte(v)), nil
	case Int16:
		return binary.BigEndian.AppendUint16(buf, uint16(v)), nil
	case Int32:
		return binary.BigEndian.AppendUint32(buf, uint32(v)), nil
	default: // Int64
		return binary.BigEndian.AppendUint64(buf, uint64(v)), nil
	}
}

// decodeInt reads one integer element of width bytes, sign-extending unless
// the dtype is unsigned. The caller has already verified that width bytes
// remain.
func decodeInt(data []byte, width int, unsigned bool) int64 {
	switch width {
	case 1:
		if unsigned {
			return int64(data[0])
		}
		return int64(int8(data[0]))
	case 2:
		return int64(int16(binary.BigEndian.Uint16(data)))
	case 4:
		return int64(int32(binary.BigEndian.Uint32(data)))
	default: // 8
		return int64(binary.BigEndian.Uint64(data))
	}
}

// appendBool appends the single-byte encoding of b (0x00 or 0x01).
func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 0x01)
	}
	return append(buf, 0x00)
}

// decodeBool reads one boolean byte. Any value other than 0x00/0x01 fails
// with MALFORMED_SCALAR.
func decodeBool(data []byte, offset int) (bool, error) {
	switch data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, newErrorAt(ErrCodeMalformedScalar, offset, "boolean byte 0x%02x, want 0x00 or 0x01", data[0])
	}
}

// appendComplex appends real then imaginary IEEE-754 floats of half the
// complex width each.
func appendComplex(buf []byte, d DataType, c complex128) []byte {
	half := Float64
	if d == Complex64 {
		half = Float32
	}
	buf = appendFloat(buf, half, real(c))
	return appendFloat(buf, half, imag(c))
}

// decodeComplex reads one complex element of dtype d. The caller has already
// verified that Width() bytes remain.
func decodeComplex(data []byte, d DataType) complex128 {
	half := Float64
	if d == Complex64 {
		half = Float32
	}
	re := decodeFloat(data, half)
	im := decodeFloat(data[half.Width():], half)
	return complex(re, im)
}
