package cmd

import (
	"github.com/huangsam/votetab/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp [dataset-path]",
	Short: "Start the Votetab MCP server",
	Long: `Launch an MCP server that allows AI agents to tabulate survey data via standard tools.

The positional dataset path becomes the default dataset for every tool;
individual tool calls may override it with their own dataset_path argument.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Table rendering is suppressed by the handlers themselves; the
		// protocol owns stdio, so handlers return JSON directly.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, storeManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
