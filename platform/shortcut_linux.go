//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ShortcutExt returns the filename extension for shortcuts on this platform.
func ShortcutExt() string { return ".desktop" }

// WriteShortcut creates a freedesktop.org desktop entry at the specified path.
// The target is not required to exist yet.
func WriteShortcut(path string, s Shortcut) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", filepath.Dir(path), err)
	}

	name := strings.TrimSuffix(filepath.Base(path), ShortcutExt())
	exec := s.Target
	if s.Arguments != "" {
		exec += " " + s.Arguments
	}
	workingDir := s.WorkingDir
	if workingDir == "" {
		workingDir = filepath.Dir(s.Target)
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", name)
	fmt.Fprintf(&b, "Exec=%s\n", exec)
	fmt.Fprintf(&b, "Path=%s\n", workingDir)
	if s.Description != "" {
		fmt.Fprintf(&b, "Comment=%s\n", s.Description)
	}
	if s.IconPath != "" {
		fmt.Fprintf(&b, "Icon=%s\n", s.IconPath)
	}
	b.WriteString("Terminal=false\n")

	// Desktop entries need the execute bit for most desktop environments
	// to treat them as launchable.
	if err := os.WriteFile(path, []byte(b.String()), 0755); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}
