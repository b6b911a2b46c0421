package cmd

import (
	"fmt"

	"github.com/agentic-research/skyforge/internal/config"
	"github.com/agentic-research/skyforge/internal/ronpatch"
	"github.com/agentic-research/skyforge/internal/texmap"
	"github.com/agentic-research/skyforge/internal/writeback"
	"github.com/spf13/cobra"
)

func newPatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch",
		Short: "Insert texture paths into the solar system RON data file",
		Long: `Restores the data file from its backup (when one exists), then inserts a
texture: Some("...") line after the rotation_period line of every body that
has a known texture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			return runPatch(cmd, a, cfg.Patch)
		},
	}

	f := cmd.Flags()
	f.String("input", config.DefaultPatchInput, "RON file to patch")
	f.String("output", "", "Where to write the result (defaults to --input)")
	f.String("backup", config.DefaultPatchBackup, "Clean copy restored over --input before patching")
	f.Bool("no-restore", false, "Patch --input as is, without restoring the backup")
	f.String("mapping", "", "YAML or JSON file of body name to texture path")
	f.String("mapping-selector", "", "JSONPath to the table inside --mapping (e.g. $.textures)")
	f.Bool("replace-mapping", false, "Use only the --mapping table instead of merging it over the built-in one")

	a.bind(f, map[string]string{
		config.KeyPatchInput:           "input",
		config.KeyPatchOutput:          "output",
		config.KeyPatchBackup:          "backup",
		config.KeyPatchNoRestore:       "no-restore",
		config.KeyPatchMapping:         "mapping",
		config.KeyPatchMappingSelector: "mapping-selector",
		config.KeyPatchReplaceMapping:  "replace-mapping",
	})
	return cmd
}

func runPatch(cmd *cobra.Command, a *app, cfg config.PatchConfig) error {
	out := cmd.OutOrStdout()
	display := cfg.Output
	if err := a.paths(&cfg.Input, &cfg.Output, &cfg.Backup, &cfg.Mapping); err != nil {
		return err
	}

	mapping := texmap.Default()
	if cfg.Mapping != "" {
		loaded, err := texmap.Load(a.fs, cfg.Mapping, cfg.MappingSelector)
		if err != nil {
			return err
		}
		if cfg.ReplaceMapping {
			mapping = loaded
		} else {
			mapping = texmap.Merge(mapping, loaded)
		}
		fmt.Fprintf(out, "Loaded %d texture mappings from %s\n", len(loaded), cfg.Mapping)
	}

	if !cfg.NoRestore {
		restored, err := writeback.RestoreBackup(a.fs, cfg.Backup, cfg.Input)
		if err != nil {
			return err
		}
		if restored {
			fmt.Fprintf(out, "Restored from backup: %s\n", cfg.Backup)
		}
	}

	n, err := ronpatch.Patch(a.fs, cfg.Input, cfg.Output, mapping)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nUpdated %d celestial bodies with texture paths\n", n)
	fmt.Fprintf(out, "Output written to: %s\n", display)
	return nil
}
