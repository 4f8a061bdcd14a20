package main

import (
	"github.com/spf13/cobra"

	"github.com/skosovsky/toolcall/adapters/mcpserver"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run the tools as an MCP server on stdin/stdout",
		Long: `Starts a Model Context Protocol server over stdio, so MCP clients can list
and call the demo tools. Logs go to stderr to keep stdout free for JSON-RPC.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			h, err := a.handler()
			if err != nil {
				return err
			}
			a.logger.Info("starting MCP server (stdio)")
			return mcpserver.ServeStdio(mcpserver.NewServer(h, "toolcall", version))
		},
	}
}
