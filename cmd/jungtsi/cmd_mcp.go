package main

import (
	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"jungtsi/internal/logging"
	mcpserver "jungtsi/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio for agent integration",
	Long: "Starts an MCP server over stdin/stdout. Hosts connect via their MCP\n" +
		"configuration and call the calculation tools directly.",
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, _ []string) error {
	logging.New("mcp").Info("starting jungtsi MCP server over stdio")
	return mcpserver.NewServer(version).Run(cmd.Context(), &sdkmcp.StdioTransport{})
}
