package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/posykit/posy"
	"github.com/posykit/posy/internal/cli"
	"github.com/posykit/posy/internal/config"
	"github.com/posykit/posy/pkg/domain"
)

var generateCmd = &cobra.Command{
	Use:   "generate [preset-id]",
	Short: "Generate prompts from a preset",
	Long: `Generates one or more prompts from a stored preset (by ID) or from a
preset file given with --file. Passing --seed makes the output reproducible;
--samples generates several prompts from one session, so sequential nodes
rotate across them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		preset, err := resolvePreset(cmd, args, cfg)
		if err != nil {
			return err
		}

		eng := posy.New(posy.WithLogger(logger))
		if err := eng.Validate(preset); err != nil {
			return fmt.Errorf("preset is invalid: %w", err)
		}

		var opts []domain.SessionOption
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			opts = append(opts, domain.WithSeed(seed))
		}
		session := posy.NewSession(opts...)

		samples, _ := cmd.Flags().GetInt("samples")
		if samples < 1 {
			samples = 1
		}
		for i := 0; i < samples; i++ {
			fmt.Println(eng.Generate(preset, session))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64("seed", 0, "Seed for reproducible output")
	generateCmd.Flags().Int("samples", 1, "Number of prompts to generate")
	generateCmd.Flags().String("file", "", "Read the preset from a YAML file instead of the store")
	rootCmd.AddCommand(generateCmd)
}

// resolvePreset loads the preset either from --file or from the store by ID.
func resolvePreset(cmd *cobra.Command, args []string, cfg config.Config) (domain.Preset, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return domain.Preset{}, fmt.Errorf("failed to read preset file: %w", err)
		}
		var preset domain.Preset
		if err := yaml.Unmarshal(data, &preset); err != nil {
			return domain.Preset{}, fmt.Errorf("failed to decode preset file: %w", err)
		}
		return preset, nil
	}

	if len(args) == 0 {
		return domain.Preset{}, fmt.Errorf("a preset ID or --file is required")
	}

	store, err := cli.NewStore(cfg.Store)
	if err != nil {
		return domain.Preset{}, err
	}
	preset, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return domain.Preset{}, fmt.Errorf("failed to load preset %q: %w", args[0], err)
	}
	return preset, nil
}
