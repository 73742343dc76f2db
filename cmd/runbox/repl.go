package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/michaelbrown/runbox/internal/config"
	"github.com/michaelbrown/runbox/internal/engine"
)

var replLangFlag string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively execute snippets",
	Long: `Read snippets from the terminal and execute them with the local
toolchains. Finish a snippet with a single "." on its own line.

Examples:
  runbox repl
  runbox repl --language javascript`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replLangFlag, "language", "python", "Initial language tag")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replLangFlag + "> ",
		HistoryFile:     "/tmp/runbox_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	fmt.Printf("Runbox REPL (%s)\n", replLangFlag)
	fmt.Printf("End a snippet with \".\", switch with /lang <tag>, /quit to exit\n\n")

	var buf []string
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				fmt.Println("Goodbye!")
				return nil
			}
			return err
		}

		switch {
		case line == "/quit":
			return nil

		case strings.HasPrefix(line, "/lang "):
			replLangFlag = strings.TrimSpace(strings.TrimPrefix(line, "/lang "))
			rl.SetPrompt(replLangFlag + "> ")

		case strings.TrimSpace(line) == ".":
			resp := eng.Execute(context.Background(), engine.Request{
				Code:     strings.Join(buf, "\n"),
				Language: replLangFlag,
			})
			buf = buf[:0]

			fmt.Print(resp.Stdout)
			if resp.Stderr != "" {
				fmt.Print(resp.Stderr)
			}
			fmt.Printf("(exit %d, %.1fms)\n", resp.ExitCode, resp.ExecutionTime)

		default:
			buf = append(buf, line)
		}
	}
}
