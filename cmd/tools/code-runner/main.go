package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/michaelbrown/runbox/internal/engine"
	"github.com/michaelbrown/runbox/internal/toolchain"
	"github.com/michaelbrown/runbox/internal/workspace"
)

// MCP stdio tool server exposing the local execution engine as a code_run
// tool, so agents can run snippets with the host toolchains.

func main() {
	reg := toolchain.Defaults()
	eng := engine.New(reg, workspace.NewManager("", nil), 0, nil)

	s := server.NewMCPServer("runbox-code-runner", "0.1.0")

	s.AddTool(mcp.Tool{
		Name:        "code_run",
		Description: fmt.Sprintf("Execute code with the host toolchains. Supported languages: %s.", strings.Join(reg.Tags(), ", ")),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"language": map[string]any{
					"type":        "string",
					"description": "Programming language tag (python, javascript, go, c, ...)",
				},
				"code": map[string]any{
					"type":        "string",
					"description": "Source code to execute",
				},
				"timeout": map[string]any{
					"type":        "integer",
					"description": "Wall-clock limit in seconds (default 10)",
				},
			},
			Required: []string{"language", "code"},
		},
	}, makeCodeRunHandler(eng))

	if err := server.ServeStdio(s); err != nil {
		fmt.Printf("server error: %v\n", err)
	}
}

func makeCodeRunHandler(eng *engine.Engine) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]any)
		if args == nil {
			return errResult("error: invalid arguments"), nil
		}

		language, _ := args["language"].(string)
		code, _ := args["code"].(string)
		timeout, _ := args["timeout"].(float64) // JSON numbers come as float64

		if language == "" || code == "" {
			return errResult("error: 'language' and 'code' are required"), nil
		}

		resp := eng.Execute(ctx, engine.Request{
			Code:     code,
			Language: language,
			Timeout:  int(timeout),
		})

		var output strings.Builder
		if resp.Stdout != "" {
			output.WriteString(resp.Stdout)
		}
		if resp.Stderr != "" {
			if output.Len() > 0 {
				output.WriteString("\n")
			}
			output.WriteString("STDERR:\n" + resp.Stderr)
		}
		if resp.ExitCode != 0 {
			output.WriteString(fmt.Sprintf("\nexit code: %d", resp.ExitCode))
		}

		text := output.String()
		if len(text) > 4000 {
			text = text[:4000] + "\n... (output truncated)"
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
			IsError: resp.ExitCode != 0,
		}, nil
	}
}

func errResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: text}},
		IsError: true,
	}
}
