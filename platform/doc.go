// Package platform provides the OS leaf calls the appstage install engine
// builds on. Each concern is implemented per operating system behind build
// tags (paths_windows.go style files).
//
// # Features
//
//   - Paths: well-known locations (Desktop, Start Menu / applications dir,
//     Program Files, per-user data)
//   - Shortcuts: write and delete shortcut files (.lnk via COM on Windows,
//     freedesktop .desktop entries on Linux, symlinks on macOS)
//   - Uninstall entries: read/write/delete "Programs and Features" records
//     in the Windows registry (per-user or per-machine)
//   - Elevation: detect and request administrator/root privileges
//
// # Example Usage
//
//	desktop, err := platform.UserDesktopPath()
//	if err != nil {
//	    return err
//	}
//	err = platform.WriteShortcut(filepath.Join(desktop, "MyApp"+platform.ShortcutExt()), platform.Shortcut{
//	    Target:      exePath,
//	    Description: "My Application",
//	})
package platform
