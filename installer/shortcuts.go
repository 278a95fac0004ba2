package installer

import (
	"os"
	"path/filepath"

	"github.com/crafted-tech/appstage/platform"
)

// Location names a well-known shortcut placement.
type Location int

const (
	LocationDesktop Location = iota
	LocationStartMenu
)

func (l Location) String() string {
	if l == LocationStartMenu {
		return "start menu"
	}
	return "desktop"
}

// ShortcutSpec describes one shortcut to create.
type ShortcutSpec struct {
	Target      string
	DisplayName string
	IconPath    string // optional; a missing icon file is dropped, not an error
	Description string
	WorkingDir  string // optional, defaults to the target's directory
	Location    Location
	Folder      string // start-menu subfolder, "" for root
}

// ShortcutManager creates and removes shortcuts in the environment's
// desktop and start-menu locations.
type ShortcutManager struct {
	env *Environment
}

// NewShortcutManager returns a manager bound to env.
func NewShortcutManager(env *Environment) *ShortcutManager {
	return &ShortcutManager{env: env}
}

// Create writes the shortcut and returns its path. The target is not
// required to exist: install sequences may create the shortcut before the
// launcher it points at.
func (m *ShortcutManager) Create(spec ShortcutSpec) (string, error) {
	iconPath := spec.IconPath
	if iconPath != "" && !FileExists(iconPath) {
		iconPath = ""
	}

	path := m.shortcutPath(spec.DisplayName, spec.Location, spec.Folder)
	err := platform.WriteShortcut(path, platform.Shortcut{
		Target:      spec.Target,
		WorkingDir:  spec.WorkingDir,
		Description: spec.Description,
		IconPath:    iconPath,
	})
	if err != nil {
		return "", &ShortcutError{Location: spec.Location, Name: spec.DisplayName, Err: err}
	}
	return path, nil
}

// Remove deletes the named shortcut. A missing shortcut yields
// (false, nil): the location is already in the desired end state.
func (m *ShortcutManager) Remove(displayName string, loc Location, folder string) (bool, error) {
	path := m.shortcutPath(displayName, loc, folder)
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &ShortcutError{Location: loc, Name: displayName, Err: err}
	}
	if err := platform.DeleteShortcut(path); err != nil {
		return false, &ShortcutError{Location: loc, Name: displayName, Err: err}
	}

	// Drop the start-menu subfolder once its last shortcut is gone.
	if loc == LocationStartMenu && folder != "" {
		_ = os.Remove(filepath.Dir(path))
	}
	return true, nil
}

func (m *ShortcutManager) shortcutPath(displayName string, loc Location, folder string) string {
	name := displayName + platform.ShortcutExt()
	if loc == LocationDesktop {
		return filepath.Join(m.env.DesktopDir, name)
	}
	if folder != "" {
		return filepath.Join(m.env.StartMenuDir, folder, name)
	}
	return filepath.Join(m.env.StartMenuDir, name)
}
