// Package commands implements the CLI commands for pkgdesc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgdesc/internal/app"
	"go.trai.ch/pkgdesc/internal/build"
	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/pkgdesc/internal/core/ports"
)

// CLI represents the command line interface for pkgdesc.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	descriptor string
	jsonLog    bool
}

// Application represents the application logic interface.
type Application interface {
	SetJSONLogs(enable bool)
	Validate(ctx context.Context, path string) (*domain.Descriptor, error)
	Plan(ctx context.Context, path string, opts app.PlanOptions) ([]domain.BuildPlan, error)
	PreBuild(ctx context.Context, path string, src ports.OSIdentitySource) ([]string, error)
	RunPreBuild(ctx context.Context, path string, opts app.RunOptions) error
	Env(ctx context.Context, path string, opts app.EnvOptions) ([]domain.EnvMutation, error)
	ReleasePath(ctx context.Context, path string, env map[string]string) (string, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgdesc",
		Short:         "Evaluate package descriptors for builds and environment activation",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.descriptor, "descriptor", "d", ".",
		"Descriptor file, or a directory to search upward from")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLog, "json-log", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetJSONLogs(c.jsonLog)
	}

	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newPreBuildCmd())
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newReleasePathCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
