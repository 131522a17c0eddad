package cli

import (
	"github.com/spf13/cobra"

	specio "github.com/matzehuels/floorplan/pkg/io"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// exampleCommand prints the reference building spec as a starting point.
func (c *CLI) exampleCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print the reference building spec",
		Long: `Print the reference building spec: a 34' × 24' storey with four 11' × 12'
rooms around a 12' × 24' hall and an eight-tread stair.

Redirect it to a file and edit it to describe your own building:

  floorplan example > house.toml
  floorplan render house.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := specio.ParseFormat(format)
			if err != nil {
				return err
			}
			return specio.WriteSpec(cmd.OutOrStdout(), plan.Reference(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(specio.FormatTOML), "spec format: toml (default), yaml, json")

	return cmd
}
