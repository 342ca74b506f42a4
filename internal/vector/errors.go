package vector

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes codec failures. Every encode/decode error carries
// exactly one code; callers translate codes into HTTP statuses or failed
// on-chain calls.
type ErrorCode string

const (
	// ErrCodeShapeMismatch indicates the declared shape's element count
	// disagrees with the supplied or decoded value count.
	ErrCodeShapeMismatch ErrorCode = "SHAPE_MISMATCH"

	// ErrCodeUnsupportedDataType indicates an attempt to encode the generic
	// int alias, or to decode it without an out-of-band width.
	ErrCodeUnsupportedDataType ErrorCode = "UNSUPPORTED_DATA_TYPE"

	// ErrCodeUnknownDataType indicates a decoded dtype tag outside the
	// registry.
	ErrCodeUnknownDataType ErrorCode = "UNKNOWN_DATA_TYPE"

	// ErrCodeMalformedShape indicates a shape that cannot be represented
	// on the wire, or shape bytes that cannot be read back.
	ErrCodeMalformedShape ErrorCode = "MALFORMED_SHAPE"

	// ErrCodeTruncatedPayload indicates the byte count disagrees with the
	// declared header: fewer bytes remain than a field requires, or data
	// trails the final scalar.
	ErrCodeTruncatedPayload ErrorCode = "TRUNCATED_PAYLOAD"

	// ErrCodeMalformedScalar indicates a fixed-domain scalar outside its
	// valid encoding, e.g. a boolean byte other than 0x00/0x01, or an
	// integer value outside its dtype's range on encode.
	ErrCodeMalformedScalar ErrorCode = "MALFORMED_SCALAR"

	// ErrCodeArithmeticOverflow indicates fixed-point scaling exceeded the
	// representable int256 range. Values are never clamped or wrapped.
	ErrCodeArithmeticOverflow ErrorCode = "ARITHMETIC_OVERFLOW"

	// ErrCodeUnknownArithmeticMode indicates a mode byte other than 0 or 1.
	ErrCodeUnknownArithmeticMode ErrorCode = "UNKNOWN_ARITHMETIC_MODE"

	// ErrCodeValueKindMismatch indicates the values carrier does not match
	// the dtype class (e.g. Bools supplied for a float32 vector). This is a
	// construction-time invariant violation, not a wire condition.
	ErrCodeValueKindMismatch ErrorCode = "VALUE_KIND_MISMATCH"
)

// CodecError is the error type returned by all codec operations.
//
// Offset is the byte offset at which a decode failure was detected, or -1
// for errors with no wire position (encode-side validation, conversion).
type CodecError struct {
	Code    ErrorCode
	Message string
	Offset  int
}

// Error implements the error interface.
func (e *CodecError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s: %s (offset=%d)", e.Code, e.Message, e.Offset)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *CodecError {
	return &CodecError{Code: code, Message: fmt.Sprintf(format, args...), Offset: -1}
}

func newErrorAt(code ErrorCode, offset int, format string, args ...any) *CodecError {
	return &CodecError{Code: code, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// CodeOf extracts the ErrorCode from an error, or "" if the error is not a
// CodecError. Uses errors.As to handle wrapped errors.
func CodeOf(err error) ErrorCode {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsShapeMismatch reports whether err is a SHAPE_MISMATCH codec error.
func IsShapeMismatch(err error) bool { return CodeOf(err) == ErrCodeShapeMismatch }

// IsUnsupportedDataType reports whether err is an UNSUPPORTED_DATA_TYPE codec error.
func IsUnsupportedDataType(err error) bool { return CodeOf(err) == ErrCodeUnsupportedDataType }

// IsUnknownDataType reports whether err is an UNKNOWN_DATA_TYPE codec error.
func IsUnknownDataType(err error) bool { return CodeOf(err) == ErrCodeUnknownDataType }

// IsMalformedShape reports whether err is a MALFORMED_SHAPE codec error.
func IsMalformedShape(err error) bool { return CodeOf(err) == ErrCodeMalformedShape }

// IsTruncatedPayload reports whether err is a TRUNCATED_PAYLOAD codec error.
func IsTruncatedPayload(err error) bool { return CodeOf(err) == ErrCodeTruncatedPayload }

// IsMalformedScalar reports whether err is a MALFORMED_SCALAR codec error.
func IsMalformedScalar(err error) bool { return CodeOf(err) == ErrCodeMalformedScalar }

// IsArithmeticOverflow reports whether err is an ARITHMETIC_OVERFLOW codec error.
func IsArithmeticOverflow(err error) bool { return CodeOf(err) == ErrCodeArithmeticOverflow }
