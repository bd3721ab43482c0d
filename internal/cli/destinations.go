package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pubplot/pkg/destinations"
)

// destinationsCommand creates the destinations command, which lists every
// known destination with its scaling behavior.
func (c *CLI) destinationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "destinations",
		Short: "List known destinations",
		Long: `List the known destinations and their scale factors.

Built-in destinations are always available; more can be declared in a TOML
file passed with --config. Any name not listed here behaves like "default".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTitle("destinations")
			for _, name := range destinations.Names() {
				d := destinations.Lookup(name)
				printKeyValue(name, formatValue(d.Factor()))
				if d.CSSPixelUnits {
					printDetail("reads points as CSS pixels, corrected by %s/96", formatValue(d.SaveDPI))
				}
			}
			return nil
		},
	}
}
