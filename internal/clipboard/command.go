package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// ErrHelperNotFound indicates the helper binary is not on PATH.
var ErrHelperNotFound = errors.New("clipboard helper not found")

// CommandStrategy pipes text into an external clipboard helper.
//
// The helper is started with a stdin pipe, given the whole text, and the
// pipe is closed. The strategy then waits at most Settle for the helper to
// exit: a non-zero exit inside that window is a failure, a helper still
// running afterwards counts as delivered. With AwaitExit set it waits for
// the exit unconditionally and requires status 0.
type CommandStrategy struct {
	Command string
	Args    []string

	// When decides applicability. Nil means always.
	When func(Env) bool

	Settle    time.Duration
	AwaitExit bool

	// LookPath resolves Command. Nil uses exec.LookPath.
	LookPath func(file string) (string, error)
}

func (c *CommandStrategy) Name() string {
	if len(c.Args) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Args, " ")
}

func (c *CommandStrategy) Applicable(env Env) bool {
	return c.When == nil || c.When(env)
}

func (c *CommandStrategy) Deliver(ctx context.Context, text string) error {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(c.Command)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHelperNotFound, err)
	}

	cmd := exec.Command(path, c.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("opening stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.Command, err)
	}

	_, writeErr := io.WriteString(stdin, text)
	closeErr := stdin.Close()
	if writeErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("writing to %s: %w", c.Command, writeErr)
	}
	if closeErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("closing %s stdin: %w", c.Command, closeErr)
	}

	return c.wait(ctx, cmd)
}

func (c *CommandStrategy) wait(ctx context.Context, cmd *exec.Cmd) error {
	if !c.AwaitExit && c.Settle <= 0 {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var settle <-chan time.Time
	if !c.AwaitExit {
		timer := time.NewTimer(c.Settle)
		defer timer.Stop()
		settle = timer.C
	}

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s exited: %w", c.Command, err)
		}
		return nil
	case <-settle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
