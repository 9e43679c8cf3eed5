package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newReleasePathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release-path",
		Short: "Print the release destination selected by the descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, err := c.app.ReleasePath(cmd.Context(), c.descriptor, environ(os.Environ()))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), dest)
			return nil
		},
	}
}

// environ converts "KEY=VALUE" pairs into a map; later duplicates win.
func environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
