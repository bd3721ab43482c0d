package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pubplot/pkg/destinations"
	"github.com/matzehuels/pubplot/pkg/errors"
	"github.com/matzehuels/pubplot/pkg/scaling"
)

// scaleOpts holds the command-line flags for the scale command.
type scaleOpts struct {
	destination string  // destination whose factor to apply
	factor      float64 // explicit factor, overrides the destination
}

// scaleCommand creates the scale command, which multiplies values by a
// destination's factor. Output is plain numbers on stdout so it composes
// with shell pipelines.
func (c *CLI) scaleCommand() *cobra.Command {
	opts := scaleOpts{destination: destinations.Default.Name}

	cmd := &cobra.Command{
		Use:   "scale <value>...",
		Short: "Scale figure dimensions for a destination",
		Long: `Multiply one or more values by a destination's scale factor.

Examples:
  pubplot scale 2 2 --destination figma   # 6.25 6.25
  pubplot scale 8.5 --factor 1.5          # 12.75`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			scaler := scaling.Scaler(opts.factor)
			if !cmd.Flags().Changed("factor") {
				_, scaler = destinations.RenderParams(opts.destination)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatValues(scaler.All(values...)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.destination, "destination", "d", opts.destination, "destination whose factor to apply")
	cmd.Flags().Float64VarP(&opts.factor, "factor", "f", 1.0, "explicit scale factor (overrides --destination)")

	return cmd
}

// parseValues converts command arguments to floats.
func parseValues(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidValue, "not a number: %s", a)
		}
		out[i] = v
	}
	return out, nil
}

// formatValues renders scaled values space-separated, matching the shape of
// the input: one number in, one number out.
func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
