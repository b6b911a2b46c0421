// Package writeback replaces files atomically and restores them from backups.
package writeback

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// WriteFile replaces the content of path with data.
// The write is atomic: content is written to a temp file in the same directory,
// then renamed over the target. Missing parent directories are created.
func WriteFile(fs billy.Filesystem, path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	tmp, err := util.TempFile(fs, dir, ".skyforge-write-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("close temp: %w", err)
	}

	// Keep the previous file's permission bits when replacing it.
	mode := os.FileMode(0o644)
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if ch, ok := fs.(billy.Chmod); ok {
		_ = ch.Chmod(tmpName, mode) // best-effort permission sync
	}

	if err := fs.Rename(tmpName, path); err != nil {
		_ = fs.Remove(tmpName) // best-effort cleanup
		return fmt.Errorf("rename temp to %s: %w", path, err)
	}

	return nil
}

// RestoreBackup copies backupPath over targetPath when the backup exists.
// It reports whether a restore happened; a missing backup is not an error.
func RestoreBackup(fs billy.Filesystem, backupPath, targetPath string) (bool, error) {
	if _, err := fs.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat backup %s: %w", backupPath, err)
	}

	data, err := util.ReadFile(fs, backupPath)
	if err != nil {
		return false, fmt.Errorf("read backup %s: %w", backupPath, err)
	}
	if err := WriteFile(fs, targetPath, data); err != nil {
		return false, fmt.Errorf("restore %s: %w", targetPath, err)
	}
	return true, nil
}
