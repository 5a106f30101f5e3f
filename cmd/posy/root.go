package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/posykit/posy/internal/config"
	"github.com/posykit/posy/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "posy",
	Short: "Posy is a weighted random prompt generator for image-generation tools",
	Long: `Posy expands a tree of nested, weighted prompt-configuration nodes into a
single text prompt. Presets live as YAML files (or in Redis) and can be
generated from the command line, over HTTP, or through MCP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "posy.yaml", "Path to the posy config file")
	rootCmd.PersistentFlags().String("store", "", "Preset directory, overriding the config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}

// loadConfig resolves the effective configuration for a command invocation.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	if dir, _ := cmd.Flags().GetString("store"); dir != "" {
		cfg.Store = config.StoreConfig{Backend: "file", Path: dir}
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}

	return cfg, logging.New(level), nil
}
