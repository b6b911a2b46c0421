package cmd

import (
	"fmt"
	"strings"

	"github.com/agentic-research/skyforge/internal/config"
	"github.com/agentic-research/skyforge/internal/placeholder"
	"github.com/spf13/cobra"
)

func newPlaceholdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "placeholders",
		Short: "Generate placeholder textures for moons, asteroids and dwarf planets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			return runPlaceholders(cmd, a, cfg.Placeholders)
		},
	}

	cmd.Flags().String("dir", config.DefaultTextureDir, "Texture root the celestial/ tree is written under")
	cmd.Flags().Int("quality", placeholder.DefaultQuality, "JPEG quality (1-100)")
	a.bind(cmd.Flags(), map[string]string{
		config.KeyPlaceholdersDir:     "dir",
		config.KeyPlaceholdersQuality: "quality",
	})
	return cmd
}

func runPlaceholders(cmd *cobra.Command, a *app, cfg config.PlaceholdersConfig) error {
	out := cmd.OutOrStdout()
	rule := strings.Repeat("=", 50)
	display := cfg.Dir
	if err := a.paths(&cfg.Dir); err != nil {
		return err
	}

	if err := a.fs.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create texture root %s: %w", cfg.Dir, err)
	}
	root, err := a.fs.Chroot(cfg.Dir)
	if err != nil {
		return fmt.Errorf("open texture root %s: %w", cfg.Dir, err)
	}

	fmt.Fprintf(out, "%s\nGenerating Placeholder Textures\n%s\n", rule, rule)

	specs := placeholder.Catalog()
	if err := placeholder.GenerateAll(root, specs, cfg.Quality); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\nGenerated %d placeholder textures under %s\n%s\n", rule, len(specs), display, rule)
	return nil
}
