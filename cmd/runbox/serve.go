package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/runbox/internal/config"
	"github.com/michaelbrown/runbox/internal/engine"
	"github.com/michaelbrown/runbox/internal/server"
	"github.com/michaelbrown/runbox/internal/toolchain"
	"github.com/michaelbrown/runbox/internal/workspace"
)

var portFlag int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the execution service HTTP server",
	Long: `Start the HTTP server that executes submitted snippets with the host
toolchains.

The listen port comes from --port, then the PORT environment variable,
then the config file, defaulting to 8004.

Examples:
  runbox serve
  runbox serve --port 9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&portFlag, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	port := cfg.Server.Port
	if portFlag > 0 {
		port = portFlag
	}

	srv := server.New(eng, slog.Default())

	// Graceful shutdown on SIGINT/SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		srv.Shutdown(context.Background())
	}()

	if err := srv.Start(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildEngine wires the toolchain registry, workspace manager, and engine
// from config. Shared by serve, run, and repl.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	reg := toolchain.Defaults()
	if cfg.Exec.Toolchains != "" {
		if err := reg.LoadFile(cfg.Exec.Toolchains); err != nil {
			return nil, fmt.Errorf("loading toolchains: %w", err)
		}
	}

	ws := workspace.NewManager(cfg.Exec.TempRoot, slog.Default())
	timeout := time.Duration(cfg.Exec.DefaultTimeout) * time.Second
	return engine.New(reg, ws, timeout, slog.Default()), nil
}
