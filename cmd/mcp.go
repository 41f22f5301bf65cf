package cmd

import (
	"github.com/orbweave/orbweave/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Orbweave MCP server",
	Long:  `Launch an MCP server that allows AI agents to run chart analysis via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The MCP transport owns stdio, so setup must not print anything.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
