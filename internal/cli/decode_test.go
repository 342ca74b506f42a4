package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

func encodeTestEnvelope(t *testing.T, v *vector.RitualVector, mode vector.ArithmeticMode) string {
	t.Helper()
	envelope, err := vector.Encode(v, mode)
	require.NoError(t, err)
	return payload.Envelope(envelope).String()
}

func TestDecodeInlineHex(t *testing.T) {
	v, err := vector.New(vector.Int32, vector.Shape{3}, vector.Int64s{-1, 0, 7})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.Native)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg})

	require.NoError(t, cmd.Execute())

	var result DecodeResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "int32", result.DType)
	assert.Equal(t, []int{3}, result.Shape)
	require.Len(t, result.Values, 3)
	assert.Equal(t, "-1", result.Values[0].String())
}

func TestDecodeJSONOutput(t *testing.T) {
	v, err := vector.New(vector.Float64, vector.Shape{1}, vector.Float64s{0.0525})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.FixedPoint(18))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var result DecodeResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.True(t, result.FixedPoint)
	assert.Equal(t, uint8(18), result.Decimals)
}

func TestDecodeTruncatedEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0x00000000000100000002"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "TRUNCATED_PAYLOAD")
}

func TestDecodeBadHex(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0xzz"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// Hand-built legacy envelope: generic int dtype, shape [2], 8-byte
// elements 5 and -5.
const genericIntEnvelope = "0x000c0000000100000002" +
	"0000000000000005" + "fffffffffffffffb"

func TestDecodeGenericIntWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{genericIntEnvelope, "--generic-int-width", "8"})

	require.NoError(t, cmd.Execute())

	var result DecodeResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "int", result.DType)
}

func TestDecodeGenericIntWithoutWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDecodeCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{genericIntEnvelope})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, buf.String(), "UNSUPPORTED_DATA_TYPE")
}
