package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "assets/data/solar_system.ron", cfg.Patch.Input)
	assert.Equal(t, cfg.Patch.Input, cfg.Patch.Output, "output defaults to input")
	assert.Equal(t, "assets/data/solar_system.ron.backup", cfg.Patch.Backup)
	assert.False(t, cfg.Patch.NoRestore)
	assert.Equal(t, "assets/textures", cfg.Placeholders.Dir)
	assert.Equal(t, 85, cfg.Placeholders.Quality)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SKYFORGE_PATCH_INPUT", "data/bodies.ron")
	t.Setenv("SKYFORGE_PLACEHOLDERS_QUALITY", "70")
	t.Setenv("SKYFORGE_PATCH_NO_RESTORE", "true")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "data/bodies.ron", cfg.Patch.Input)
	assert.Equal(t, "data/bodies.ron", cfg.Patch.Output)
	assert.Equal(t, 70, cfg.Placeholders.Quality)
	assert.True(t, cfg.Patch.NoRestore)
}

func TestReadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skyforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
  format: json
patch:
  output: out/solar_system.ron
  mapping: textures.yaml
placeholders:
  dir: build/textures
`), 0o644))

	v := NewViper()
	require.NoError(t, ReadFile(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "out/solar_system.ron", cfg.Patch.Output)
	assert.Equal(t, "textures.yaml", cfg.Patch.Mapping)
	assert.Equal(t, "build/textures", cfg.Placeholders.Dir)
}

func TestReadFile_EmptyPathNoop(t *testing.T) {
	assert.NoError(t, ReadFile(NewViper(), ""))
}

func TestReadFile_Missing(t *testing.T) {
	err := ReadFile(NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	v := NewViper()
	v.Set(KeyPlaceholdersQuality, 0)
	v.Set(KeyPatchReplaceMapping, true)

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quality")
	assert.Contains(t, err.Error(), "replace_mapping")
}
