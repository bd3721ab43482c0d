package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pubplot/pkg/destinations"
	"github.com/matzehuels/pubplot/pkg/export"
	"github.com/matzehuels/pubplot/pkg/rcparams"
)

// paramsOpts holds the command-line flags for the params command.
type paramsOpts struct {
	output string // output file path (.json or .toml, table only if empty)
}

// paramsCommand creates the params command, which prints the rendering
// parameters computed for a destination.
func (c *CLI) paramsCommand() *cobra.Command {
	opts := paramsOpts{}

	cmd := &cobra.Command{
		Use:   "params [destination]",
		Short: "Print rendering parameters for a destination",
		Long: `Print the rendering parameters computed for a destination.

Without a destination the unscaled defaults are shown. Unrecognized names
are treated as the default destination (factor 1.0).

Examples:
  pubplot params                       # Unscaled parameter table
  pubplot params figma                 # Figma-corrected table (factor 3.125)
  pubplot params figma -o figma.toml   # Also write the table to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := destinations.Default.Name
			if len(args) == 1 {
				name = args[0]
			}
			return c.runParams(cmd.Context(), name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the table to a .json or .toml file")

	return cmd
}

func (c *CLI) runParams(ctx context.Context, name string, opts paramsOpts) error {
	logger := loggerFromContext(ctx)

	params, scaler := destinations.RenderParams(name)
	d := destinations.Lookup(name)
	if d.Name != name {
		logger.Debugf("Unknown destination %q, using %s", name, d.Name)
	}

	printTitle("%s parameters", d.Name)
	printKeyValue("scaling factor", formatValue(float64(scaler)))
	for _, k := range rcparams.Keys() {
		printKeyValue(string(k), formatValue(params[k]))
	}

	if opts.output != "" {
		if err := export.Export(params, opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}
	return nil
}

// formatValue renders a parameter value for the table.
func formatValue(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case string:
		return t
	case []string:
		return strings.Join(t, ", ")
	}
	return ""
}
