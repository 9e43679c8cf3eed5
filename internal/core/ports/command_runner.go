package ports

import (
	"context"
	"io"
)

// CommandRunner executes shell scripts on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes script with env, streaming its output to stdout and stderr.
	// A nil env inherits the current process environment.
	Run(ctx context.Context, script string, env []string, stdout, stderr io.Writer) error
}
