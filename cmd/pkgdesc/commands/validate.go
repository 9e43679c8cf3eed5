package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the package descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := c.app.Validate(cmd.Context(), c.descriptor)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s (%s)\n", d.Name, d.RawVersion, d.ReleaseTarget)
			for i, v := range d.Variants {
				_, _ = fmt.Fprintf(out, "  %d: %s\n", i, v)
			}
			return nil
		},
	}
}
