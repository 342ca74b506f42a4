package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeRegistry(t *testing.T) {
	tests := []struct {
		dtype     DataType
		name      string
		width     int
		isFloat   bool
		isComplex bool
		isBool    bool
		isSigned  bool
	}{
		{Float32, "float32", 4, true, false, false, false},
		{Float64, "float64", 8, true, false, false, false},
		{Float16, "float16", 2, true, false, false, false},
		{BFloat16, "bfloat16", 2, true, false, false, false},
		{Complex64, "complex64", 8, false, true, false, false},
		{Complex128, "complex128", 16, false, true, false, false},
		{Int8, "int8", 1, false, false, false, true},
		{Uint8, "uint8", 1, false, false, false, false},
		{Int16, "int16", 2, false, false, false, true},
		{Int32, "int32", 4, false, false, false, true},
		{Int64, "int64", 8, false, false, false, true},
		{Bool, "bool", 1, false, false, true, false},
		{Int, "int", 0, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.dtype.Known())
			assert.Equal(t, tt.name, tt.dtype.String())
			assert.Equal(t, tt.width, tt.dtype.Width())
			assert.Equal(t, tt.isFloat, tt.dtype.IsFloat())
			assert.Equal(t, tt.isComplex, tt.dtype.IsComplex())
			assert.Equal(t, tt.isBool, tt.dtype.IsBool())
			assert.Equal(t, tt.isSigned, tt.dtype.IsSignedInt())
		})
	}
}

func TestDataTypeWireTagsAreStable(t *testing.T) {
	// The numeric tag is part of the wire format. This test pins every tag
	// so an accidental reordering of the enum fails loudly.
	assert.Equal(t, DataType(0), Float32)
	assert.Equal(t, DataType(1), Float64)
	assert.Equal(t, DataType(2), Float16)
	assert.Equal(t, DataType(3), BFloat16)
	assert.Equal(t, DataType(4), Complex64)
	assert.Equal(t, DataType(5), Complex128)
	assert.Equal(t, DataType(6), Int8)
	assert.Equal(t, DataType(7), Uint8)
	assert.Equal(t, DataType(8), Int16)
	assert.Equal(t, DataType(9), Int32)
	assert.Equal(t, DataType(10), Int64)
	assert.Equal(t, DataType(11), Bool)
	assert.Equal(t, DataType(12), Int)
}

func TestParseDataType(t *testing.T) {
	for tag := range typeTable {
		dtype := DataType(tag)
		parsed, err := ParseDataType(dtype.String())
		require.NoError(t, err)
		assert.Equal(t, dtype, parsed)
	}

	_, err := ParseDataType("float128")
	require.Error(t, err)
	assert.True(t, IsUnknownDataType(err))
}

func TestDataTypeUnknownTag(t *testing.T) {
	unknown := DataType(200)
	assert.False(t, unknown.Known())
	assert.Equal(t, "DataType(200)", unknown.String())
}

func TestIsInteger(t *testing.T) {
	assert.True(t, Int8.IsInteger())
	assert.True(t, Uint8.IsInteger())
	assert.True(t, Int.IsInteger())
	assert.False(t, Float32.IsInteger())
	assert.False(t, Complex64.IsInteger())
	assert.False(t, Bool.IsInteger())
}
