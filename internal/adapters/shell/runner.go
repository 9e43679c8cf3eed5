// Package shell provides the host command runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/pkgdesc/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultShell interprets pre-build scripts. Prerequisite commands use bash builtins such as source.
const DefaultShell = "bash"

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	shell string
}

// NewRunner creates a Runner that interprets scripts with bash.
func NewRunner() *Runner {
	return &Runner{shell: DefaultShell}
}

// NewRunnerWithShell creates a Runner that interprets scripts with the given shell.
func NewRunnerWithShell(shell string) *Runner {
	return &Runner{shell: shell}
}

// Run executes script with "<shell> -c". The shell is looked up on env's PATH first.
func (r *Runner) Run(ctx context.Context, script string, env []string, stdout, stderr io.Writer) error {
	executable := r.shell
	if !filepath.IsAbs(executable) && env != nil {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, "-c", script) //nolint:gosec // script comes from the package descriptor
	// exec.CommandContext sets Args[0] to the resolved path; keep the name as invoked.
	cmd.Args[0] = r.shell
	cmd.Env = env
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(domain.ErrCommandFailed, "script exited unsuccessfully"), "exit_code", exitCode)
		return zerr.With(wrapped, "cause", err.Error())
	}
	return nil
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
