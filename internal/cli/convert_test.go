package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

func TestConvertNativeToFixedPoint(t *testing.T) {
	v, err := vector.New(vector.Float64, vector.Shape{1}, vector.Float64s{0.0525})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.Native)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg, "--to-fixed-point", "--decimals", "18"})

	require.NoError(t, cmd.Execute())

	envelope, err := payload.ParseHex(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	got, mode, err := vector.Decode(envelope)
	require.NoError(t, err)
	assert.True(t, mode.FixedPoint)
	assert.Equal(t, uint8(18), mode.Decimals)
	assert.InDelta(t, 0.0525, got.Values.(vector.Float64s)[0], 1e-15)
}

func TestConvertFixedPointToNative(t *testing.T) {
	v, err := vector.New(vector.Float32, vector.Shape{2}, vector.Float64s{1.5, -0.5})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.FixedPoint(9))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg, "--to-native"})

	require.NoError(t, cmd.Execute())

	envelope, err := payload.ParseHex(strings.TrimSpace(buf.String()))
	require.NoError(t, err)
	got, mode, err := vector.Decode(envelope)
	require.NoError(t, err)
	assert.False(t, mode.FixedPoint)
	assert.Equal(t, vector.Float64s{1.5, -0.5}, got.Values)
}

func TestConvertRequiresExactlyOneDirection(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0x0000000000"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	cmd = NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0x0000000000", "--to-fixed-point", "--to-native"})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConvertOverflowingValue(t *testing.T) {
	v, err := vector.New(vector.Float64, vector.Shape{1}, vector.Float64s{1e300})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.Native)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewConvertCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg, "--to-fixed-point", "--decimals", "18"})

	err = cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "ARITHMETIC_OVERFLOW")
}
