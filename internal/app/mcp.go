package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aryanbv/folio/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server",
	Long: `Start a Model Context Protocol stdio server that an MCP client can
query. The server exposes these tools:

  get_github_stats     GitHub profile, totals and language breakdown
  get_leetcode_stats   LeetCode problem-solving statistics
  get_tech_stack       Technology grid with proficiency scores
  search_projects      Curated projects and showcase repositories
  search_certificates  Certificates
  get_timeline         Timeline entries by type

Add to an MCP client configuration:
  {"mcpServers":{"folio":{"command":"folio","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	srv := mcp.NewServer(mcp.Deps{
		Aggregator:    rt.agg,
		Catalog:       rt.catalog,
		Logger:        logger,
		Version:       appVersion,
		ShowcaseLimit: rt.cfg.GitHub.ShowcaseLimit,
	})
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}
