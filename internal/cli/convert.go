package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// ConvertResult holds the output of the convert command.
type ConvertResult struct {
	Data       payload.Envelope `json:"data"`
	Digest     string           `json:"digest"`
	FixedPoint bool             `json:"fixed_point"`
	Decimals   uint8            `json:"decimals,omitempty"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		toFixed  bool
		toNative bool
		decimals uint8
	)

	cmd := &cobra.Command{
		Use:   "convert <envelope>",
		Short: "Re-encode an envelope under a different arithmetic mode",
		Long: `Decode an envelope and re-encode it under the requested arithmetic
mode. Converting a fixed-point envelope to native reconstructs approximate
floats; converting native floats to fixed-point scales them to int256 words.

Exactly one of --to-fixed-point or --to-native must be given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toFixed == toNative {
				return NewExitError(ExitCommandError, "exactly one of --to-fixed-point or --to-native is required")
			}
			return runConvert(rootOpts, cmd, args[0], toFixed, decimals)
		},
	}

	cmd.Flags().BoolVar(&toFixed, "to-fixed-point", false, "re-encode with int256 fixed-point scaling")
	cmd.Flags().BoolVar(&toNative, "to-native", false, "re-encode with native IEEE-754 elements")
	cmd.Flags().Uint8Var(&decimals, "decimals", 18, "fixed-point decimal scale for --to-fixed-point")

	return cmd
}

func runConvert(opts *RootOptions, cmd *cobra.Command, arg string, toFixed bool, decimals uint8) error {
	formatter := newFormatter(opts, cmd)

	envelope, err := readEnvelope(cmd, arg)
	if err != nil {
		return inputError(formatter, err)
	}

	v, from, err := vector.Decode(envelope)
	if err != nil {
		return codecError(formatter, err)
	}

	to := vector.Native
	if toFixed {
		to = vector.FixedPoint(decimals)
	}
	formatter.VerboseLog("Converting fixed_point=%v to fixed_point=%v", from.FixedPoint, to.FixedPoint)

	out, err := vector.Encode(v, to)
	if err != nil {
		return codecError(formatter, err)
	}

	result := ConvertResult{
		Data:       out,
		Digest:     vector.EnvelopeDigest(out),
		FixedPoint: to.FixedPoint,
		Decimals:   to.Decimals,
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}
	fmt.Fprintln(formatter.Writer, result.Data.String())
	return nil
}
