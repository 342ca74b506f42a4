package vector

import "fmt"

// DataType identifies a tensor's scalar element type. The numeric value is
// the wire tag written into the envelope header, so the ordering here is
// part of the format and must never change.
type DataType uint8

const (
	Float32 DataType = iota
	Float64
	Float16
	BFloat16
	Complex64
	Complex128
	Int8
	Uint8
	Int16
	Int32
	Int64
	Bool

	// Int is a generic integer alias with no fixed width. It exists only so
	// payloads that predate width-specific dtypes can still be decoded when
	// the caller supplies a width out-of-band (DecodeOptions.GenericIntWidth).
	// Encoding it always fails with UNSUPPORTED_DATA_TYPE.
	Int
)

// typeInfo is one row of the registry: wire width and classification of a
// scalar element. Adding a dtype means adding one row; nothing else changes.
type typeInfo struct {
	name      string
	width     int // bytes per scalar on the wire; 0 for the generic alias
	float     bool
	complex   bool
	boolean   bool
	signedInt bool
}

// typeTable is the single source of truth consulted by every other part of
// the codec. Indexed by DataType; immutable after process start.
var typeTable = [...]typeInfo{
	Float32:    {name: "float32", width: 4, float: true},
	Float64:    {name: "float64", width: 8, float: true},
	Float16:    {name: "float16", width: 2, float: true},
	BFloat16:   {name: "bfloat16", width: 2, float: true},
	Complex64:  {name: "complex64", width: 8, complex: true},
	Complex128: {name: "complex128", width: 16, complex: true},
	Int8:       {name: "int8", width: 1, signedInt: true},
	Uint8:      {name: "uint8", width: 1},
	Int16:      {name: "int16", width: 2, signedInt: true},
	Int32:      {name: "int32", width: 4, signedInt: true},
	Int64:      {name: "int64", width: 8, signedInt: true},
	Bool:       {name: "bool", width: 1, boolean: true},
	Int:        {name: "int", width: 0, signedInt: true},
}

// Known reports whether d is a registry entry (including the generic alias).
func (d DataType) Known() bool {
	return int(d) < len(typeTable)
}

// Width returns the number of bytes one scalar occupies on the wire in
// native mode. The generic int alias has no fixed width and returns 0.
func (d DataType) Width() int {
	return typeTable[d].width
}

// IsFloat reports whether d is a floating dtype. Only floating dtypes are
// eligible for fixed-point conversion.
func (d DataType) IsFloat() bool { return typeTable[d].float }

// IsComplex reports whether d carries paired real/imaginary floats.
func (d DataType) IsComplex() bool { return typeTable[d].complex }

// IsBool reports whether d is the boolean dtype.
func (d DataType) IsBool() bool { return typeTable[d].boolean }

// IsSignedInt reports whether d is a two's-complement signed integer dtype.
func (d DataType) IsSignedInt() bool { return typeTable[d].signedInt }

// IsInteger reports whether d is any integer dtype (signed, unsigned, or
// the generic alias).
func (d DataType) IsInteger() bool {
	info := typeTable[d]
	return !info.float && !info.complex && !info.boolean
}

// String returns the canonical lowercase name, e.g. "float32".
func (d DataType) String() string {
	if !d.Known() {
		return fmt.Sprintf("DataType(%d)", uint8(d))
	}
	return typeTable[d].name
}

// ParseDataType resolves a canonical dtype name. Used by the CLI and the
// JSON payload layer; the wire format itself carries only the numeric tag.
func ParseDataType(name string) (DataType, error) {
	for tag, info := range typeTable {
		if info.name == name {
			return DataType(tag), nil
		}
	}
	return 0, newError(ErrCodeUnknownDataType, "unknown dtype name %q", name)
}
