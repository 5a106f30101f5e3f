package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/posykit/posy"
	"github.com/posykit/posy/pkg/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate [preset-id]",
	Short: "Check a preset for configuration issues",
	Long: `Validates a preset: bracket-range ordering, probability bounds, counts,
leaf/group consistency and node-ID uniqueness. Exits non-zero when issues
are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		preset, err := resolvePreset(cmd, args, cfg)
		if err != nil {
			return err
		}

		eng := posy.New()
		if err := eng.Validate(preset); err != nil {
			for _, issue := range schema.ConfigurationIssues(err) {
				fmt.Fprintln(os.Stderr, issue)
			}
			return fmt.Errorf("preset %q is invalid", preset.ID)
		}

		fmt.Println("Preset is valid! ✅")
		return nil
	},
}

func init() {
	validateCmd.Flags().String("file", "", "Read the preset from a YAML file instead of the store")
	rootCmd.AddCommand(validateCmd)
}
