package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "runbox",
	Short: "Runbox - local code execution service",
	Long: `Runbox executes code snippets with the language toolchains installed on
the host and reports captured output, exit code, and wall-clock time.

It serves the execution-service HTTP contract: POST /execute with
{code, language, timeout}, plus / and /health probes.`,
}

func main() {
	// Best-effort local dev convenience: load .env when present.
	// In production, environment variables should be injected by the runtime.
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
