package vector

import (
	"math"
	"math/big"
)

// WordSize is the byte width of one fixed-point element on the wire: a
// 32-byte signed integer matching an EVM word, so encoded payloads
// interoperate directly with on-chain fixed-point arithmetic libraries.
const WordSize = 32

// int256 bounds: [-2^255, 2^255-1].
var (
	maxInt256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minInt256 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	twoPow256 = new(big.Int).Lsh(big.NewInt(1), 256)
)

// ToFixedPoint converts a floating value to its scaled-integer form:
// round(v * 10^decimals) with round-half-to-even, as a signed int256.
//
// The product is computed at float64 before rounding; the scaled integer is
// exact for every value a float64 can hold at the requested scale. Values
// whose scaled magnitude exceeds the int256 range, and non-finite inputs,
// fail with ARITHMETIC_OVERFLOW - never clamped or wrapped, since silent
// truncation would corrupt on-chain settlement amounts.
func ToFixedPoint(v float64, decimals uint8) (*big.Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, newError(ErrCodeArithmeticOverflow, "cannot scale non-finite value %v", v)
	}
	product := v * math.Pow10(int(decimals))
	if math.IsInf(product, 0) {
		return nil, newError(ErrCodeArithmeticOverflow,
			"%v * 10^%d exceeds float64 range", v, decimals)
	}
	rounded := math.RoundToEven(product)

	// rounded is an integral float64, so the big.Float conversion is exact.
	scaled, _ := new(big.Float).SetFloat64(rounded).Int(nil)
	if scaled.Cmp(maxInt256) > 0 || scaled.Cmp(minInt256) < 0 {
		return nil, newError(ErrCodeArithmeticOverflow,
			"%v * 10^%d outside int256 range", v, decimals)
	}
	return scaled, nil
}

// FromFixedPoint converts a scaled integer back to a float64:
// scaled / 10^decimals. Callers reconstructing a narrower floating dtype
// quantize the result through that dtype's width afterwards.
func FromFixedPoint(scaled *big.Int, decimals uint8) float64 {
	num := new(big.Float).SetPrec(256).SetInt(scaled)
	den := new(big.Float).SetPrec(256).SetInt(pow10Int(decimals))
	out, _ := new(big.Float).SetPrec(256).Quo(num, den).Float64()
	return out
}

// pow10Int returns 10^d as an exact integer.
func pow10Int(d uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d)), nil)
}

// appendWord appends the 32-byte big-endian two's-complement encoding of a
// scaled integer. The value must already be within int256 range.
func appendWord(buf []byte, scaled *big.Int) []byte {
	w := scaled
	if scaled.Sign() < 0 {
		w = new(big.Int).Add(scaled, twoPow256)
	}
	word := make([]byte, WordSize)
	w.FillBytes(word)
	return append(buf, word...)
}

// decodeWord reads one 32-byte two's-complement word as a signed integer.
// The caller has already verified that WordSize bytes remain.
func decodeWord(data []byte) *big.Int {
	u := new(big.Int).SetBytes(data[:WordSize])
	if u.Bit(255) == 1 {
		u.Sub(u, twoPow256)
	}
	return u
}
