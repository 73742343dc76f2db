// Package engine orchestrates a single code execution: toolchain selection,
// workspace lifecycle, compile, run, and response assembly.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/michaelbrown/runbox/internal/runner"
	"github.com/michaelbrown/runbox/internal/toolchain"
	"github.com/michaelbrown/runbox/internal/workspace"
)

// Request is a validated execution request. A zero Timeout means "apply the
// default".
type Request struct {
	Code     string `json:"code"`
	Language string `json:"language"`
	Timeout  int    `json:"timeout"`
}

// Response is the terminal outcome of a request. Every failure mode lands
// here too: compile errors, timeouts, and service errors are reported in-band
// with exit_code 1. ExecutionTime is wall-clock milliseconds from request
// entry, compile phase included.
type Response struct {
	Stdout        string  `json:"stdout"`
	Stderr        string  `json:"stderr"`
	ExitCode      int     `json:"exit_code"`
	ExecutionTime float64 `json:"execution_time"`
}

// DefaultTimeout applies when a request carries no positive timeout.
const DefaultTimeout = 10 * time.Second

// Engine runs requests against the host's language toolchains.
type Engine struct {
	toolchains *toolchain.Registry
	workspaces *workspace.Manager
	defTimeout time.Duration
	log        *slog.Logger
}

// New creates an engine. A non-positive defaultTimeout falls back to
// DefaultTimeout; a nil logger falls back to slog.Default.
func New(reg *toolchain.Registry, ws *workspace.Manager, defaultTimeout time.Duration, logger *slog.Logger) *Engine {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		toolchains: reg,
		workspaces: ws,
		defTimeout: defaultTimeout,
		log:        logger,
	}
}

// Languages returns the supported language tags.
func (e *Engine) Languages() []string {
	return e.toolchains.Tags()
}

// Execute runs one request end to end. It never returns an error: every
// outcome, including host-side failures, is folded into the response.
func (e *Engine) Execute(ctx context.Context, req Request) Response {
	start := time.Now()
	log := e.log.With("exec", ulid.Make().String(), "language", req.Language)
	log.Info("executing", "bytes", len(req.Code))

	tc, ok := e.toolchains.Lookup(req.Language)
	if !ok {
		return e.fail(start, fmt.Sprintf("Unsupported language: %s", req.Language))
	}

	limit := time.Duration(req.Timeout) * time.Second
	if limit <= 0 {
		limit = e.defTimeout
	}

	dir := ""
	if !tc.Inline() {
		ws, err := e.workspaces.Acquire(tc.Tag)
		if err != nil {
			return e.fail(start, err.Error())
		}
		defer e.workspaces.Release(ws)
		dir = ws.Dir

		src := filepath.Join(dir, tc.SourceName(req.Code))
		if err := os.WriteFile(src, []byte(req.Code), 0o644); err != nil {
			return e.fail(start, fmt.Sprintf("failed to write source: %v", err))
		}

		if tc.HasCompile() {
			// The user deadline covers the run phase only; compile time
			// still lands in ExecutionTime.
			res, err := runner.Run(ctx, tc.CompileArgv(req.Code), dir, 0)
			if err != nil {
				se := new(runner.SpawnError)
				if errors.As(err, &se) {
					return e.fail(start, fmt.Sprintf("%s compiler not available: %v", tc.Tag, se.Err))
				}
				return e.fail(start, err.Error())
			}
			if res.ExitCode != 0 {
				log.Info("compile failed", "exit_code", res.ExitCode)
				return e.respond(start, Response{
					Stderr:   "Compilation error:\n" + res.Stderr,
					ExitCode: 1,
				})
			}
		}
	}

	res, err := runner.Run(ctx, tc.RunArgv(req.Code), dir, limit)
	if err != nil {
		te := new(runner.TimeoutError)
		if errors.As(err, &te) {
			log.Info("timed out", "limit", limit)
			return e.fail(start, te.Error())
		}
		se := new(runner.SpawnError)
		if errors.As(err, &se) {
			return e.fail(start, fmt.Sprintf("failed to execute %s: %v", se.Name, se.Err))
		}
		return e.fail(start, err.Error())
	}

	log.Info("finished", "exit_code", res.ExitCode, "elapsed", time.Since(start))
	return e.respond(start, Response{
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
	})
}

func (e *Engine) fail(start time.Time, msg string) Response {
	return e.respond(start, Response{Stderr: msg, ExitCode: 1})
}

func (e *Engine) respond(start time.Time, resp Response) Response {
	resp.ExecutionTime = float64(time.Since(start).Microseconds()) / 1000.0
	return resp
}
