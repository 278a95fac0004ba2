package platform

import "os"

// Shortcut describes a launcher shortcut independent of how the OS stores it
// (.lnk file, .desktop entry, symlink).
type Shortcut struct {
	Target      string // Path to the target executable
	Arguments   string // Command-line arguments (optional)
	WorkingDir  string // Working directory (optional, defaults to target's directory)
	Description string // Tooltip/comment text (optional)
	IconPath    string // Path to icon file (optional)
	IconIndex   int    // Icon index within the icon file (Windows only)
}

// DeleteShortcut removes a shortcut file. A missing file is not an error.
func DeleteShortcut(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
