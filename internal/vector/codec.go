package vector

import (
	"math"
	"math/big"
)

// Wire tags for the arithmetic-mode header byte.
const (
	modeTagNative     = 0x00
	modeTagFixedPoint = 0x01
)

// ArithmeticMode selects how floating elements are written: Native IEEE-754
// bit patterns for off-chain consumers, or fixed-point scaled integers for
// on-chain consumers. Fixed-point only applies to floating dtypes; integer
// and bool vectors pass through natively in either mode.
type ArithmeticMode struct {
	FixedPoint bool
	Decimals   uint8 // meaningful only when FixedPoint is set
}

// Native is the passthrough arithmetic mode.
var Native = ArithmeticMode{}

// FixedPoint returns the scaled-integer arithmetic mode with the given
// number of decimals.
func FixedPoint(decimals uint8) ArithmeticMode {
	return ArithmeticMode{FixedPoint: true, Decimals: decimals}
}

// DecodeOptions carries out-of-band decoding context.
type DecodeOptions struct {
	// GenericIntWidth supplies the scalar byte width (1, 2, 4, or 8) for
	// legacy payloads declaring the generic int alias, which has no fixed
	// width of its own. Zero means no width is available; decoding such a
	// payload then fails with UNSUPPORTED_DATA_TYPE.
	GenericIntWidth int
}

// Encode serializes a vector into the self-describing envelope:
//
//	[1 byte: arithmetic_mode]            0 = native, 1 = fixed-point
//	[1 byte: dtype_tag]
//	[1 byte: num_decimals]               present only if fixed-point
//	[4 bytes: dim_count][4 bytes each: dims]
//	[payload: row-major scalars]
//
// The returned byte string is passed verbatim as an ABI bytes parameter and
// embedded base16-encoded in HTTP JSON bodies; no outer framing or checksum
// is added at this layer.
func Encode(v *RitualVector, mode ArithmeticMode) ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if v.DType == Int {
		return nil, newError(ErrCodeUnsupportedDataType,
			"generic int alias has no fixed width; encode with an explicit width dtype")
	}

	scaleFloats := mode.FixedPoint && v.DType.IsFloat()
	elemWidth := v.DType.Width()
	if scaleFloats {
		elemWidth = WordSize
	}

	buf := make([]byte, 0, 3+4+4*len(v.Shape)+int(v.ElemCount())*elemWidth)
	if mode.FixedPoint {
		buf = append(buf, modeTagFixedPoint, byte(v.DType), mode.Decimals)
	} else {
		buf = append(buf, modeTagNative, byte(v.DType))
	}
	buf = EncodeShape(buf, v.Shape)

	var err error
	switch vals := v.Values.(type) {
	case Float64s:
		for _, f := range vals {
			if scaleFloats {
				var scaled *big.Int
				scaled, err = ToFixedPoint(f, mode.Decimals)
				if err != nil {
					return nil, err
				}
				buf = appendWord(buf, scaled)
			} else {
				buf = appendFloat(buf, v.DType, f)
			}
		}
	case Int64s:
		for _, n := range vals {
			if buf, err = appendInt(buf, v.DType, n); err != nil {
				return nil, err
			}
		}
	case Bools:
		for _, b := range vals {
			buf = appendBool(buf, b)
		}
	case Complex128s:
		for _, c := range vals {
			buf = appendComplex(buf, v.DType, c)
		}
	}
	return buf, nil
}

// Decode is the inverse of Encode. It validates at each step that enough
// bytes remain and that the dtype tag is a registry entry; it either returns
// a fully valid vector or an error, never a partial result.
func Decode(data []byte) (*RitualVector, ArithmeticMode, error) {
	return DecodeWithOptions(data, DecodeOptions{})
}

// DecodeWithOptions decodes with out-of-band context, which is required for
// legacy generic-int payloads.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*RitualVector, ArithmeticMode, error) {
	if len(data) < 2 {
		return nil, Native, newErrorAt(ErrCodeTruncatedPayload, len(data),
			"need 2 header bytes, have %d", len(data))
	}

	var mode ArithmeticMode
	switch data[0] {
	case modeTagNative:
	case modeTagFixedPoint:
		mode.FixedPoint = true
	default:
		return nil, Native, newErrorAt(ErrCodeUnknownArithmeticMode, 0,
			"arithmetic mode tag 0x%02x, want 0x00 or 0x01", data[0])
	}

	dtype := DataType(data[1])
	if !dtype.Known() {
		return nil, Native, newErrorAt(ErrCodeUnknownDataType, 1,
			"dtype tag %d outside registry", data[1])
	}

	offset := 2
	if mode.FixedPoint {
		if len(data) < 3 {
			return nil, Native, newErrorAt(ErrCodeTruncatedPayload, offset,
				"fixed-point envelope missing num_decimals byte")
		}
		mode.Decimals = data[2]
		offset = 3
	}

	elemWidth := dtype.Width()
	if dtype == Int {
		switch opts.GenericIntWidth {
		case 1, 2, 4, 8:
			elemWidth = opts.GenericIntWidth
		default:
			return nil, Native, newErrorAt(ErrCodeUnsupportedDataType, 1,
				"generic int payload requires DecodeOptions.GenericIntWidth of 1, 2, 4, or 8")
		}
	}
	if mode.FixedPoint && dtype.IsFloat() {
		elemWidth = WordSize
	}

	shape, offset, err := DecodeShape(data, offset)
	if err != nil {
		return nil, Native, err
	}

	count := shape.ElemCount()
	remaining := int64(len(data) - offset)
	if count > math.MaxInt64/int64(elemWidth) || count*int64(elemWidth) != remaining {
		return nil, Native, newErrorAt(ErrCodeTruncatedPayload, offset,
			"payload length mismatch: %d elements of %d bytes declared, %d bytes remain",
			count, elemWidth, remaining)
	}

	values, err := decodePayload(data, offset, dtype, mode, int(count), elemWidth)
	if err != nil {
		return nil, Native, err
	}
	return &RitualVector{DType: dtype, Shape: shape, Values: values}, mode, nil
}

// decodePayload reads count row-major scalars starting at offset into the
// carrier matching the dtype class.
func decodePayload(data []byte, offset int, dtype DataType, mode ArithmeticMode, count, elemWidth int) (Values, error) {
	switch {
	case dtype.IsFloat():
		out := make(Float64s, count)
		for i := range out {
			if mode.FixedPoint {
				out[i] = quantize(dtype, FromFixedPoint(decodeWord(data[offset:]), mode.Decimals))
			} else {
				out[i] = decodeFloat(data[offset:], dtype)
			}
			offset += elemWidth
		}
		return out, nil
	case dtype.IsComplex():
		out := make(Complex128s, count)
		for i := range out {
			out[i] = decodeComplex(data[offset:], dtype)
			offset += elemWidth
		}
		return out, nil
	case dtype.IsBool():
		out := make(Bools, count)
		for i := range out {
			b, err := decodeBool(data[offset:], offset)
			if err != nil {
				return nil, err
			}
			out[i] = b
			offset += elemWidth
		}
		return out, nil
	default:
		out := make(Int64s, count)
		for i := range out {
			out[i] = decodeInt(data[offset:], elemWidth, dtype == Uint8)
			offset += elemWidth
		}
		return out, nil
	}
}
