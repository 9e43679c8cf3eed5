package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgdesc/internal/adapters/osrelease" //nolint:depguard // Flag selects the os-release file
	"go.trai.ch/pkgdesc/internal/app"
	"go.trai.ch/pkgdesc/internal/core/ports"
	"go.trai.ch/zerr"
)

func (c *CLI) newPreBuildCmd() *cobra.Command {
	var (
		osRelease string
		run       bool
		root      string
	)

	cmd := &cobra.Command{
		Use:   "prebuild [--run [--root DIR] [-- COMMAND...]]",
		Short: "Print or run the commands to run before building on this host",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var src ports.OSIdentitySource
			if osRelease != "" {
				src = osrelease.NewRequiredSource(osRelease)
			}

			if !run {
				if len(args) > 0 || root != "" {
					return zerr.New("a command and --root require --run")
				}
				return c.printPreBuild(cmd, src)
			}

			return c.app.RunPreBuild(cmd.Context(), c.descriptor, app.RunOptions{
				OSSource: src,
				Command:  args,
				Root:     root,
				Env:      environ(os.Environ()),
				Stdout:   cmd.OutOrStdout(),
				Stderr:   cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVar(&osRelease, "os-release", "", "Read the host identity from this file instead of /etc/os-release")
	cmd.Flags().BoolVar(&run, "run", false, "Run the commands in bash, followed by COMMAND")
	cmd.Flags().StringVar(&root, "root", "", "Activate the package installed here before running COMMAND")
	return cmd
}

func (c *CLI) printPreBuild(cmd *cobra.Command, src ports.OSIdentitySource) error {
	commands, err := c.app.PreBuild(cmd.Context(), c.descriptor, src)
	if err != nil {
		return err
	}
	for _, line := range commands {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
