package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// newFormatter builds an OutputFormatter bound to a command's streams.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// readInput reads the whole input: from the named file, or from stdin when
// the path is "-" or empty.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readEnvelope resolves an envelope argument: a hex string (with or without
// 0x prefix), or a path to a file containing one.
func readEnvelope(cmd *cobra.Command, arg string) ([]byte, error) {
	text := arg
	if looksLikePath(arg) {
		data, err := readInput(cmd, arg)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(string(data))
	}
	env, err := payload.ParseHex(text)
	if err != nil {
		return nil, err
	}
	return env, nil
}

// looksLikePath reports whether the argument should be treated as a file
// path rather than inline hex. Hex never contains separators, and "-" means
// stdin.
func looksLikePath(arg string) bool {
	if arg == "" || arg == "-" {
		return true
	}
	if strings.ContainsAny(arg, "/\\.") {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// inputError reports a pre-codec failure (unreadable file, bad hex) in the
// configured format and exits with a command error.
func inputError(formatter *OutputFormatter, err error) error {
	_ = formatter.Error(ErrCodeBadInput, err.Error(), nil)
	return WrapExitError(ExitCommandError, "invalid input", err)
}

// codecError reports a codec failure in the configured format. The response
// carries the codec's own error code.
func codecError(formatter *OutputFormatter, err error) error {
	code := string(vector.CodeOf(err))
	if code == "" {
		code = ErrCodeBadInput
	}
	_ = formatter.Error(code, err.Error(), nil)
	return WrapExitError(ExitFailure, code, err)
}
