//go:build windows

package platform

import (
	"os"

	"golang.org/x/sys/windows"
)

// UserDesktopPath returns the path to the current user's Desktop folder.
// Example: C:\Users\<user>\Desktop
func UserDesktopPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_Desktop, 0)
}

// DesktopPath returns the path to the common (all users) Desktop folder.
// Example: C:\Users\Public\Desktop
func DesktopPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_PublicDesktop, 0)
}

// UserStartMenuPath returns the path to the current user's Start Menu Programs folder.
// Example: C:\Users\<user>\AppData\Roaming\Microsoft\Windows\Start Menu\Programs
func UserStartMenuPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_Programs, 0)
}

// StartMenuPath returns the path to the common (all users) Start Menu Programs folder.
// Example: C:\ProgramData\Microsoft\Windows\Start Menu\Programs
func StartMenuPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_CommonPrograms, 0)
}

// ProgramFilesPath returns the default root for application installs.
// Example: C:\Program Files
func ProgramFilesPath() string {
	path := os.Getenv("ProgramFiles")
	if path == "" {
		return `C:\Program Files`
	}
	return path
}

// UserDataPath returns the current user's local app data folder.
// Example: C:\Users\<user>\AppData\Local
func UserDataPath() (string, error) {
	return windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0)
}
