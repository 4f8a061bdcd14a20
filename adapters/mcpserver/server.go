// Package mcpserver publishes the tools of a toolcall.Handler as an MCP server.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/skosovsky/toolcall"
)

// NewServer registers every tool of h, with its raw parameter schema, on a new MCP server.
func NewServer(h *toolcall.Handler, name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version, server.WithToolCapabilities(false))
	for _, spec := range h.AllToolsSchema() {
		tool := mcp.NewToolWithRawSchema(spec.Function.Name, spec.Function.Description, spec.Function.Parameters)
		s.AddTool(tool, ToolHandler(h, spec.Function.Name))
	}
	return s
}

// ServeStdio runs s on stdin/stdout until the input closes.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// ToolHandler adapts one registered tool to an MCP tool handler. Dispatch
// failures become error results, so the client sees the message instead of a
// protocol error.
func ToolHandler(h *toolcall.Handler, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if args == nil {
			args = map[string]any{}
		}
		raw, err := json.Marshal(args)
		if err != nil {
			return mcp.NewToolResultError("encode arguments: " + err.Error()), nil
		}
		res, err := h.CallFunction(ctx, name, raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(res), nil
	}
}
