package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/pkg/grid"
)

// sampleCommand creates the sample command that prints the built-in grid.
func (c *CLI) sampleCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample configuration",
		Long: `Print the built-in sample grid as a starting point for your own.

  spheregrid sample --format yaml > grid.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := grid.ParseFormat(format)
			if err != nil {
				return err
			}
			return grid.Encode(os.Stdout, grid.Default(), f)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(grid.FormatTOML), "encoding: toml, yaml or json")

	return cmd
}
