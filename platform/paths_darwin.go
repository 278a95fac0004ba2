//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

// UserDesktopPath returns the path to the current user's Desktop folder.
func UserDesktopPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Desktop"), nil
}

// DesktopPath returns the shared Desktop folder. macOS has no common desktop,
// so this is the same as the user desktop.
func DesktopPath() (string, error) {
	return UserDesktopPath()
}

// UserStartMenuPath returns the user's Applications directory, the closest
// analog of the Start Menu on macOS.
func UserStartMenuPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Applications"), nil
}

// StartMenuPath returns the system Applications directory.
func StartMenuPath() (string, error) {
	return "/Applications", nil
}

// ProgramFilesPath returns the default root for application installs.
func ProgramFilesPath() string {
	return "/Applications"
}

// UserDataPath returns the current user's Application Support directory.
func UserDataPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "Application Support"), nil
}
