// Package config resolves skyforge settings from flags, environment
// (SKYFORGE_*) and an optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SKYFORGE_PATCH_INPUT.
const EnvPrefix = "SKYFORGE"

// Keys used with viper. Flags bind to these names.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"

	KeyPatchInput           = "patch.input"
	KeyPatchOutput          = "patch.output"
	KeyPatchBackup          = "patch.backup"
	KeyPatchNoRestore       = "patch.no_restore"
	KeyPatchMapping         = "patch.mapping"
	KeyPatchMappingSelector = "patch.mapping_selector"
	KeyPatchReplaceMapping  = "patch.replace_mapping"

	KeyPlaceholdersDir     = "placeholders.dir"
	KeyPlaceholdersQuality = "placeholders.quality"
)

var (
	DefaultPatchInput  = filepath.Join("assets", "data", "solar_system.ron")
	DefaultPatchBackup = DefaultPatchInput + ".backup"
	DefaultTextureDir  = filepath.Join("assets", "textures")
)

// Config is the resolved configuration for one run.
type Config struct {
	Log          LogConfig
	Patch        PatchConfig
	Placeholders PlaceholdersConfig
}

// LogConfig selects the slog level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// PatchConfig holds the paths and mapping options of the patch command.
type PatchConfig struct {
	Input           string
	Output          string
	Backup          string
	NoRestore       bool
	Mapping         string
	MappingSelector string
	ReplaceMapping  bool
}

// PlaceholdersConfig holds the output directory and JPEG quality of the
// placeholders command.
type PlaceholdersConfig struct {
	Dir     string
	Quality int
}

// NewViper returns a viper instance with skyforge defaults and env binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyPatchInput, DefaultPatchInput)
	v.SetDefault(KeyPatchBackup, DefaultPatchBackup)
	v.SetDefault(KeyPlaceholdersDir, DefaultTextureDir)
	v.SetDefault(KeyPlaceholdersQuality, 85)
	return v
}

// ReadFile merges the config file at path into v. An empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Patch: PatchConfig{
			Input:           v.GetString(KeyPatchInput),
			Output:          v.GetString(KeyPatchOutput),
			Backup:          v.GetString(KeyPatchBackup),
			NoRestore:       v.GetBool(KeyPatchNoRestore),
			Mapping:         v.GetString(KeyPatchMapping),
			MappingSelector: v.GetString(KeyPatchMappingSelector),
			ReplaceMapping:  v.GetBool(KeyPatchReplaceMapping),
		},
		Placeholders: PlaceholdersConfig{
			Dir:     v.GetString(KeyPlaceholdersDir),
			Quality: v.GetInt(KeyPlaceholdersQuality),
		},
	}

	if cfg.Patch.Output == "" {
		cfg.Patch.Output = cfg.Patch.Input
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Patch.Input == "" {
		errs = append(errs, errors.New("patch input path must not be empty"))
	}
	if c.Patch.ReplaceMapping && c.Patch.Mapping == "" {
		errs = append(errs, errors.New("replace_mapping requires a mapping file"))
	}
	if c.Patch.MappingSelector != "" && c.Patch.Mapping == "" {
		errs = append(errs, errors.New("mapping_selector requires a mapping file"))
	}
	if c.Placeholders.Dir == "" {
		errs = append(errs, errors.New("placeholders dir must not be empty"))
	}
	if c.Placeholders.Quality < 1 || c.Placeholders.Quality > 100 {
		errs = append(errs, fmt.Errorf("placeholders quality must be within [1,100], got %d", c.Placeholders.Quality))
	}
	return errors.Join(errs...)
}
