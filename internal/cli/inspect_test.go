package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ritual-net/infernet-go/internal/vector"
)

func TestInspectNativeEnvelope(t *testing.T) {
	v, err := vector.New(vector.Float32, vector.Shape{2, 3}, vector.Float64s{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.Native)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInspectCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "dtype:       float32")
	assert.Contains(t, output, "[2 3]")
	assert.Contains(t, output, "elements:    6")
	assert.Contains(t, output, "mode:        native")
}

func TestInspectFixedPointEnvelope(t *testing.T) {
	v, err := vector.New(vector.Float64, vector.Shape{1}, vector.Float64s{0.0525})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.FixedPoint(18))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewInspectCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{hexArg})

	require.NoError(t, cmd.Execute())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var result InspectResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.True(t, result.FixedPoint)
	assert.Equal(t, uint8(18), result.Decimals)
	assert.Len(t, result.Digest, 64)
}

func TestInspectFromFile(t *testing.T) {
	v, err := vector.New(vector.Bool, vector.Shape{2}, vector.Bools{true, false})
	require.NoError(t, err)
	hexArg := encodeTestEnvelope(t, v, vector.Native)

	path := filepath.Join(t.TempDir(), "envelope.hex")
	require.NoError(t, os.WriteFile(path, []byte(hexArg+"\n"), 0644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInspectCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "dtype:       bool")
}

func TestInspectMalformedEnvelope(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewInspectCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0x02ff"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "UNKNOWN_ARITHMETIC_MODE")
}
