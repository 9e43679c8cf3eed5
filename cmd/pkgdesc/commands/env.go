package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgdesc/internal/app"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	formatShell = "shell"
	formatJSON  = "json"
	formatList  = "list"
)

func (c *CLI) newEnvCmd() *cobra.Command {
	opts := app.EnvOptions{}
	var format string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment mutations that activate an installed package",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatShell && format != formatJSON && format != formatList {
				return zerr.With(zerr.New("unknown output format"), "format", format)
			}

			muts, err := c.app.Env(cmd.Context(), c.descriptor, opts)
			if err != nil {
				return err
			}
			return writeMutations(cmd.OutOrStdout(), muts, format)
		},
	}

	cmd.Flags().StringVar(&opts.Root, "root", "", "Install root of the package")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Warn about install directories missing under --root")
	cmd.Flags().StringVar(&format, "format", formatShell, "Output format: shell, json or list")
	_ = cmd.MarkFlagRequired("root")
	return cmd
}

func writeMutations(w io.Writer, muts []domain.EnvMutation, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(muts)
	case formatList:
		for _, m := range muts {
			if _, err := fmt.Fprintln(w, m.String()); err != nil {
				return err
			}
		}
		return nil
	default:
		_, err := io.WriteString(w, domain.RenderShell(muts))
		return err
	}
}
