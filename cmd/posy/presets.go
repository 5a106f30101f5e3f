package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/posykit/posy/internal/cli"
	"github.com/posykit/posy/internal/presentation/tree"
	"github.com/posykit/posy/internal/presentation/tui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage stored presets",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored preset IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := cli.NewStore(cfg.Store)
		if err != nil {
			return err
		}

		ids, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list presets: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No presets found.")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <preset-id>",
	Short: "Render a preset's node tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := cli.NewStore(cfg.Store)
		if err != nil {
			return err
		}

		preset, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to load preset %q: %w", args[0], err)
		}

		markdown := tree.Markdown(preset)

		if plain, _ := cmd.Flags().GetBool("plain"); plain {
			fmt.Print(markdown)
			return nil
		}

		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Glamour can fail on exotic terminals; plain markdown still works.
			fmt.Print(markdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

var presetsRmCmd = &cobra.Command{
	Use:   "rm <preset-id>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		store, err := cli.NewStore(cfg.Store)
		if err != nil {
			return err
		}

		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete preset %q: %w", args[0], err)
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	presetsShowCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
	presetsCmd.AddCommand(presetsListCmd, presetsShowCmd, presetsRmCmd)
	rootCmd.AddCommand(presetsCmd)
}
