// Package command runs external tools and captures their output.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// Runner executes a program and returns its stdout.
// A non-zero exit status is reported as *ExitError.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExitError is returned when a command exits with a non-zero status.
type ExitError struct {
	Argv   []string
	Code   int
	Stdout string
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s: exit code %d\nstdout:\n%s\nstderr:\n%s",
		strings.Join(e.Argv, " "), e.Code, e.Stdout, e.Stderr)
}

// Exec runs commands with os/exec, inheriting the process environment.
type Exec struct{}

var _ Runner = Exec{}

func (Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	argv := append([]string{name}, args...)
	log.Debug().Strs("argv", argv).Msg("exec")

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &ExitError{
				Argv:   argv,
				Code:   exitErr.ExitCode(),
				Stdout: stdout.String(),
				Stderr: stderr.String(),
			}
		}
		return "", fmt.Errorf("%s: %w", strings.Join(argv, " "), err)
	}
	return stdout.String(), nil
}
