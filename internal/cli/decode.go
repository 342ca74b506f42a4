package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// DecodeResult holds the output of the decode command.
type DecodeResult struct {
	payload.VectorJSON
	FixedPoint bool  `json:"fixed_point"`
	Decimals   uint8 `json:"decimals,omitempty"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var genericIntWidth int

	cmd := &cobra.Command{
		Use:   "decode <envelope>",
		Short: "Decode a wire envelope back into a JSON vector",
		Long: `Decode a hex wire envelope back into its dtype, shape, and values.

The envelope is given inline as a hex string (0x prefix optional), as a path
to a file containing one, or as "-" for stdin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, cmd, args[0], genericIntWidth)
		},
	}

	cmd.Flags().IntVar(&genericIntWidth, "generic-int-width", 0, "element width for generic int payloads (1, 2, 4, or 8)")

	return cmd
}

func runDecode(opts *RootOptions, cmd *cobra.Command, arg string, genericIntWidth int) error {
	formatter := newFormatter(opts, cmd)

	envelope, err := readEnvelope(cmd, arg)
	if err != nil {
		return inputError(formatter, err)
	}
	formatter.VerboseLog("Decoding %d byte envelope", len(envelope))

	v, mode, err := vector.DecodeWithOptions(envelope, vector.DecodeOptions{
		GenericIntWidth: genericIntWidth,
	})
	if err != nil {
		return codecError(formatter, err)
	}

	result := DecodeResult{
		VectorJSON: *payload.FromVector(v),
		FixedPoint: mode.FixedPoint,
		Decimals:   mode.Decimals,
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(formatter.Writer, string(out))
	return nil
}
