//go:build darwin

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ShortcutExt returns the filename extension for shortcuts on this platform.
// macOS shortcuts are plain symlinks named after the app.
func ShortcutExt() string { return "" }

// WriteShortcut creates a symlink at the specified path pointing at the
// shortcut target. The target is not required to exist yet.
func WriteShortcut(path string, s Shortcut) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", filepath.Dir(path), err)
	}

	// Replace an existing link
	if _, err := os.Lstat(path); err == nil {
		_ = os.Remove(path)
	}

	if err := os.Symlink(s.Target, path); err != nil {
		return fmt.Errorf("create symlink: %w", err)
	}
	return nil
}
