package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritual-net/infernet-go/internal/payload"
	"github.com/ritual-net/infernet-go/internal/vector"
)

// EncodeResult holds the output of the encode command.
type EncodeResult struct {
	Data     payload.Envelope `json:"data"`
	Digest   string           `json:"digest"`
	Bytes    int              `json:"bytes"`
	DType    string           `json:"dtype"`
	Elements int64            `json:"elements"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		fixedPoint bool
		decimals   uint8
	)

	cmd := &cobra.Command{
		Use:   "encode [vector.json]",
		Short: "Encode a JSON vector into a wire envelope",
		Long: `Encode a JSON vector description into a hex wire envelope.

The input is a JSON object with "dtype", "shape", and flat "values" fields,
read from the named file or stdin. With --fixed-point, float elements are
scaled to 32-byte integer words at the given number of decimals.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runEncode(rootOpts, cmd, path, fixedPoint, decimals)
		},
	}

	cmd.Flags().BoolVar(&fixedPoint, "fixed-point", false, "scale float elements to int256 words")
	cmd.Flags().Uint8Var(&decimals, "decimals", 18, "fixed-point decimal scale")

	return cmd
}

func runEncode(opts *RootOptions, cmd *cobra.Command, path string, fixedPoint bool, decimals uint8) error {
	formatter := newFormatter(opts, cmd)

	data, err := readInput(cmd, path)
	if err != nil {
		return inputError(formatter, err)
	}

	var vj payload.VectorJSON
	if err := json.Unmarshal(data, &vj); err != nil {
		return inputError(formatter, fmt.Errorf("parse vector json: %w", err))
	}

	v, err := vj.ToVector()
	if err != nil {
		return codecError(formatter, err)
	}

	mode := vector.Native
	if fixedPoint {
		mode = vector.FixedPoint(decimals)
	}
	formatter.VerboseLog("Encoding %s vector, %d element(s), fixed_point=%v", v.DType, v.ElemCount(), fixedPoint)

	envelope, err := vector.Encode(v, mode)
	if err != nil {
		return codecError(formatter, err)
	}

	result := EncodeResult{
		Data:     envelope,
		Digest:   vector.EnvelopeDigest(envelope),
		Bytes:    len(envelope),
		DType:    v.DType.String(),
		Elements: v.ElemCount(),
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}
	fmt.Fprintln(formatter.Writer, result.Data.String())
	return nil
}
