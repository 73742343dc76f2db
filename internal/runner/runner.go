// Package runner spawns child processes with captured output under a
// wall-clock deadline.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// Result is the harvested output of a completed child process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TimeoutError reports that the deadline expired before the child exited.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("Execution timeout (%ds)", int(e.Limit.Seconds()))
}

// SpawnError reports that the child could not be started at all, typically a
// toolchain binary missing from PATH.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// killGrace is how long a timed-out child gets between SIGTERM and SIGKILL.
const killGrace = 2 * time.Second

// Run spawns argv in dir and waits for it to exit. A zero limit means no
// deadline. Stdin is disconnected; stdout and stderr are captured whole and
// decoded as UTF-8 with invalid sequences replaced.
//
// Children that exited on a signal carry no numeric status and are reported
// as exit code 1.
func Run(ctx context.Context, argv []string, dir string, limit time.Duration) (*Result, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty argv")
	}

	if limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, limit)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// On deadline: SIGTERM first, then WaitDelay delivers SIGKILL, so
	// timed-out children are reaped rather than orphaned.
	cmd.Cancel = func() error { return cmd.Process.Signal(syscall.SIGTERM) }
	cmd.WaitDelay = killGrace

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Name: argv[0], Err: err}
	}

	err := cmd.Wait()

	if limit > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, &TimeoutError{Limit: limit}
	}

	res := &Result{
		Stdout: strings.ToValidUTF8(stdout.String(), "�"),
		Stderr: strings.ToValidUTF8(stderr.String(), "�"),
	}
	if err != nil {
		ee := new(exec.ExitError)
		if !errors.As(err, &ee) {
			return nil, fmt.Errorf("waiting for %s: %w", argv[0], err)
		}
		res.ExitCode = ee.ExitCode()
		if res.ExitCode < 0 {
			res.ExitCode = 1
		}
	}
	return res, nil
}
