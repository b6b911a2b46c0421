package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentic-research/skyforge/internal/config"
	"github.com/agentic-research/skyforge/internal/logging"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	fs billy.Filesystem
	v  *viper.Viper

	// resolve maps a user supplied path to a path inside fs.
	resolve func(string) (string, error)
}

func (a *app) paths(ps ...*string) error {
	for _, p := range ps {
		if *p == "" {
			continue
		}
		r, err := a.resolve(*p)
		if err != nil {
			return fmt.Errorf("resolve path %s: %w", *p, err)
		}
		*p = r
	}
	return nil
}

func (a *app) bind(flags *pflag.FlagSet, binds map[string]string) {
	for key, flag := range binds {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", flag, err))
		}
	}
}

// NewRootCmd builds the skyforge command tree operating on fs. Paths given
// in flags or config are taken relative to the root of fs.
func NewRootCmd(fs billy.Filesystem) *cobra.Command {
	return newRootCmd(fs, func(p string) (string, error) { return p, nil })
}

func newRootCmd(fs billy.Filesystem, resolve func(string) (string, error)) *cobra.Command {
	a := &app{fs: fs, v: config.NewViper(), resolve: resolve}
	var configPath string

	root := &cobra.Command{
		Use:   "skyforge",
		Short: "Asset preparation tools for the solar system data and textures",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(a.v, configPath); err != nil {
				return err
			}
			logging.Init(cmd.ErrOrStderr(), a.v.GetString(config.KeyLogLevel), a.v.GetString(config.KeyLogFormat))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a skyforge config file")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	a.bind(root.PersistentFlags(), map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	})

	root.AddCommand(newPatchCmd(a), newPlaceholdersCmd(a))
	return root
}

// Execute runs the root command against the host filesystem. Relative paths
// resolve against the working directory.
func Execute() {
	if err := newRootCmd(osfs.New("/"), filepath.Abs).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
