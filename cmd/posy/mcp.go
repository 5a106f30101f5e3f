package main

import (
	"github.com/spf13/cobra"

	"github.com/posykit/posy"
	mcpadapter "github.com/posykit/posy/internal/adapters/mcp"
	"github.com/posykit/posy/internal/cli"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts posy as an MCP server on stdio. This lets AI agents generate
prompts from stored presets as a tool call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		store, err := cli.NewStore(cfg.Store)
		if err != nil {
			return err
		}

		engine := posy.New(posy.WithLogger(logger))
		server := mcpadapter.NewServer(engine, store)

		logger.Info("starting MCP server on stdio")
		return server.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
