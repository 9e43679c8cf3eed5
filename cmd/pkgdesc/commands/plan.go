package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgdesc/internal/app"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	opts := app.PlanOptions{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Resolve the build plan for a variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plans, err := c.app.Plan(cmd.Context(), c.descriptor, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plans)
			}

			for _, p := range plans {
				_, _ = fmt.Fprintf(out, "%s %s variant %d (%s)\n", p.Package, p.Version, p.VariantIndex, p.ID)
				if p.Subpath != "" {
					_, _ = fmt.Fprintf(out, "  subpath:        %s\n", p.Subpath)
				}
				_, _ = fmt.Fprintf(out, "  build requires: %s\n", strings.Join(p.BuildRequires, " "))
				_, _ = fmt.Fprintf(out, "  release:        %s\n", p.ReleaseTarget)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.VariantIndex, "variant", -1, "Select the variant at this index")
	cmd.Flags().StringSliceVar(&opts.With, "with", nil, "Select the first variant satisfying these requirements")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Plan every variant")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print plans as JSON")
	cmd.MarkFlagsMutuallyExclusive("all", "variant")
	cmd.MarkFlagsMutuallyExclusive("all", "with")
	return cmd
}
