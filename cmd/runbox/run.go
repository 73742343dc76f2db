package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/michaelbrown/runbox/internal/config"
	"github.com/michaelbrown/runbox/internal/engine"
)

var (
	runLangFlag    string
	runTimeoutFlag int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a source file with the local toolchains",
	Long: `Execute a single source file through the same pipeline the server uses
and print its output. The process exits with the child's exit code.

Examples:
  runbox run --language python hello.py
  runbox run --language c --timeout 5 main.c`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runLangFlag, "language", "", "Language tag (required)")
	runCmd.Flags().IntVar(&runTimeoutFlag, "timeout", 0, "Run-phase deadline in seconds (0 = default)")
	runCmd.MarkFlagRequired("language")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	code, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	resp := eng.Execute(cmd.Context(), engine.Request{
		Code:     string(code),
		Language: runLangFlag,
		Timeout:  runTimeoutFlag,
	})

	fmt.Print(resp.Stdout)
	if resp.Stderr != "" {
		fmt.Fprint(os.Stderr, resp.Stderr)
	}
	fmt.Fprintf(os.Stderr, "(exit %d, %.1fms)\n", resp.ExitCode, resp.ExecutionTime)

	if resp.ExitCode != 0 {
		os.Exit(resp.ExitCode)
	}
	return nil
}
