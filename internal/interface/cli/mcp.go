package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neilberkman/chatlens/cmd/chatlens/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Start MCP server exposing transcript analysis tools",
	Long: `Start an MCP (Model Context Protocol) server that lets an AI
assistant analyze chat exports on this machine.

Configure in Claude Desktop's config file (~/.config/claude/config.json):
  {
    "mcpServers": {
      "chatlens": {
        "command": "chatlens",
        "args": ["serve-mcp"]
      }
    }
  }
`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := mcp.StartServer(); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}
