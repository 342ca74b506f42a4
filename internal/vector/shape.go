package vector

import (
	"encoding/binary"
	"math"
)

// Shape is an ordered sequence of non-negative dimension sizes. The empty
// shape denotes a scalar (element count 1). Dimensions are stored as int for
// natural Go indexing but must fit an unsigned 32-bit wire field.
type Shape []int

// ElemCount returns the product of all dimensions. The empty shape yields 1.
// Assumes the shape has passed Validate; validated shapes cannot overflow
// because the product is capped at MaxInt64 there.
func (s Shape) ElemCount() int64 {
	count := int64(1)
	for _, dim := range s {
		count *= int64(dim)
	}
	return count
}

// Validate checks that every dimension is representable on the wire and that
// the element count does not overflow. Returns MALFORMED_SHAPE on violation.
func (s Shape) Validate() error {
	count := int64(1)
	for i, dim := range s {
		if dim < 0 {
			return newError(ErrCodeMalformedShape, "dimension %d is negative (%d)", i, dim)
		}
		if int64(dim) > math.MaxUint32 {
			return newError(ErrCodeMalformedShape, "dimension %d (%d) exceeds uint32", i, dim)
		}
		if dim > 0 && count > math.MaxInt64/int64(dim) {
			return newError(ErrCodeMalformedShape, "element count overflows int64")
		}
		count *= int64(dim)
	}
	return nil
}

// ValidateCount fails with SHAPE_MISMATCH when the shape's element count
// disagrees with the supplied value count. This check runs before any scalar
// encoding is attempted, so a shape error never emits a truncated payload.
func (s Shape) ValidateCount(valueCount int) error {
	if s.ElemCount() != int64(valueCount) {
		return newError(ErrCodeShapeMismatch,
			"shape %v implies %d elements, got %d values", []int(s), s.ElemCount(), valueCount)
	}
	return nil
}

// EncodeShape appends the wire form of s to buf: dimension count as a
// big-endian uint32 followed by each dimension as a big-endian uint32.
// The shape must have passed Validate.
func EncodeShape(buf []byte, s Shape) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	for _, dim := range s {
		buf = binary.BigEndian.AppendUint32(buf, uint32(dim))
	}
	return buf
}

// DecodeShape reads a shape starting at offset and returns it with the new
// offset. Fails with MALFORMED_SHAPE if fewer bytes remain than the declared
// dimension count requires.
func DecodeShape(data []byte, offset int) (Shape, int, error) {
	if len(data)-offset < 4 {
		return nil, 0, newErrorAt(ErrCodeMalformedShape, offset,
			"need 4 bytes for dimension count, %d remain", len(data)-offset)
	}
	dimCount := int(binary.BigEndian.Uint32(data[offset:]))
	offset += 4

	if len(data)-offset < 4*dimCount {
		return nil, 0, newErrorAt(ErrCodeMalformedShape, offset,
			"need %d bytes for %d dimensions, %d remain", 4*dimCount, dimCount, len(data)-offset)
	}

	shape := make(Shape, dimCount)
	for i := range shape {
		shape[i] = int(binary.BigEndian.Uint32(data[offset:]))
		offset += 4
	}
	if err := shape.Validate(); err != nil {
		return nil, 0, err
	}
	return shape, offset, nil
}
