package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ritual-net/infernet-go/internal/vector"
)

// InspectResult holds envelope metadata without the element values.
type InspectResult struct {
	DType      string `json:"dtype"`
	Shape      []int  `json:"shape"`
	Elements   int64  `json:"elements"`
	FixedPoint bool   `json:"fixed_point"`
	Decimals   uint8  `json:"decimals,omitempty"`
	Bytes      int    `json:"bytes"`
	Digest     string `json:"digest"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <envelope>",
		Short: "Show envelope metadata without printing values",
		Long: `Decode an envelope and report its dtype, shape, arithmetic mode,
size, and content digest. Values are decoded to verify the payload but not
printed, so large tensors stay readable.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, cmd, args[0])
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, cmd *cobra.Command, arg string) error {
	formatter := newFormatter(opts, cmd)

	envelope, err := readEnvelope(cmd, arg)
	if err != nil {
		return inputError(formatter, err)
	}

	v, mode, err := vector.Decode(envelope)
	if err != nil {
		return codecError(formatter, err)
	}

	result := InspectResult{
		DType:      v.DType.String(),
		Shape:      v.Shape,
		Elements:   v.ElemCount(),
		FixedPoint: mode.FixedPoint,
		Decimals:   mode.Decimals,
		Bytes:      len(envelope),
		Digest:     vector.EnvelopeDigest(envelope),
	}

	if formatter.Format == "json" {
		return formatter.SuccessJSON(result)
	}

	fmt.Fprintf(formatter.Writer, "dtype:       %s\n", result.DType)
	fmt.Fprintf(formatter.Writer, "shape:       %v\n", result.Shape)
	fmt.Fprintf(formatter.Writer, "elements:    %d\n", result.Elements)
	if result.FixedPoint {
		fmt.Fprintf(formatter.Writer, "mode:        fixed-point (decimals=%d)\n", result.Decimals)
	} else {
		fmt.Fprintf(formatter.Writer, "mode:        native\n")
	}
	fmt.Fprintf(formatter.Writer, "bytes:       %d\n", result.Bytes)
	fmt.Fprintf(formatter.Writer, "digest:      %s\n", result.Digest)
	return nil
}
