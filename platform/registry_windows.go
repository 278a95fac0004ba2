//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const uninstallKeyBase = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall\`

// UninstallEntry describes an installed application for Windows
// Add/Remove Programs ("Programs and Features").
type UninstallEntry struct {
	DisplayName     string // Name shown in Add/Remove Programs
	DisplayVersion  string // Version string (e.g., "1.2.3")
	Publisher       string // Publisher/company name
	InstallLocation string // Installation directory
	UninstallString string // Command that uninstalls the application
	DisplayIcon     string // Path to icon (optional)
	EstimatedSize   uint32 // Size in KB (for display in Add/Remove Programs)
	NoModify        bool   // Hide "Modify" button
	NoRepair        bool   // Hide "Repair" button
}

func rootKey(perUser bool) registry.Key {
	if perUser {
		return registry.CURRENT_USER
	}
	return registry.LOCAL_MACHINE
}

// WriteUninstallEntry creates (or replaces) the uninstall registry entry for
// the given key under HKCU (perUser) or HKLM. HKLM requires elevation.
func WriteUninstallEntry(perUser bool, key string, e UninstallEntry) error {
	k, _, err := registry.CreateKey(rootKey(perUser), uninstallKeyBase+key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create registry key: %w", err)
	}
	defer k.Close()

	stringValues := map[string]string{
		"DisplayName":     e.DisplayName,
		"DisplayVersion":  e.DisplayVersion,
		"Publisher":       e.Publisher,
		"InstallLocation": e.InstallLocation,
		"UninstallString": e.UninstallString,
	}
	if e.DisplayIcon != "" {
		stringValues["DisplayIcon"] = e.DisplayIcon
	} else if e.UninstallString != "" {
		// Default to uninstaller icon
		stringValues["DisplayIcon"] = e.UninstallString
	}

	for name, value := range stringValues {
		if err := k.SetStringValue(name, value); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}

	if e.NoModify {
		if err := k.SetDWordValue("NoModify", 1); err != nil {
			return fmt.Errorf("set NoModify: %w", err)
		}
	}
	if e.NoRepair {
		if err := k.SetDWordValue("NoRepair", 1); err != nil {
			return fmt.Errorf("set NoRepair: %w", err)
		}
	}
	if e.EstimatedSize > 0 {
		if err := k.SetDWordValue("EstimatedSize", e.EstimatedSize); err != nil {
			return fmt.Errorf("set EstimatedSize: %w", err)
		}
	}

	return nil
}

// DeleteUninstallEntry removes the uninstall registry entry.
// A missing entry is not an error.
func DeleteUninstallEntry(perUser bool, key string) error {
	err := registry.DeleteKey(rootKey(perUser), uninstallKeyBase+key)
	if err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("delete registry key: %w", err)
	}
	return nil
}

// ReadUninstallEntry looks up an existing uninstall entry by registry key.
// Returns nil if the entry does not exist.
func ReadUninstallEntry(perUser bool, key string) (*UninstallEntry, error) {
	k, err := registry.OpenKey(rootKey(perUser), uninstallKeyBase+key, registry.QUERY_VALUE)
	if err != nil {
		// Key doesn't exist - not installed
		return nil, nil
	}
	defer k.Close()

	e := &UninstallEntry{}
	if v, _, err := k.GetStringValue("DisplayName"); err == nil {
		e.DisplayName = v
	}
	if v, _, err := k.GetStringValue("DisplayVersion"); err == nil {
		e.DisplayVersion = v
	}
	if v, _, err := k.GetStringValue("Publisher"); err == nil {
		e.Publisher = v
	}
	if v, _, err := k.GetStringValue("InstallLocation"); err == nil {
		e.InstallLocation = v
	}
	if v, _, err := k.GetStringValue("UninstallString"); err == nil {
		e.UninstallString = v
	}
	if v, _, err := k.GetStringValue("DisplayIcon"); err == nil {
		e.DisplayIcon = v
	}
	if v, _, err := k.GetIntegerValue("EstimatedSize"); err == nil {
		e.EstimatedSize = uint32(v)
	}

	return e, nil
}
