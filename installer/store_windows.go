//go:build windows

package installer

import (
	"github.com/crafted-tech/appstage/platform"
)

// windowsStore maps RecordStore onto the Windows registry's Uninstall
// collection. Machine-scope writes require elevation; the resulting
// permission error surfaces to the caller unchanged.
type windowsStore struct{}

// OpenDefaultStore returns the record store for this platform.
func OpenDefaultStore(env *Environment) (RecordStore, error) {
	return windowsStore{}, nil
}

func (windowsStore) Put(rec RegistryRecord) error {
	return platform.WriteUninstallEntry(rec.Scope == ScopeUser, rec.AppName, platform.UninstallEntry{
		DisplayName:     rec.DisplayName,
		DisplayVersion:  rec.Version,
		Publisher:       rec.Publisher,
		InstallLocation: rec.InstallLocation,
		UninstallString: rec.UninstallCommand,
		DisplayIcon:     rec.IconPath,
		EstimatedSize:   rec.EstimatedSizeKB,
		NoModify:        true,
		NoRepair:        true,
	})
}

func (windowsStore) Get(appName string, scope Scope) (*RegistryRecord, error) {
	e, err := platform.ReadUninstallEntry(scope == ScopeUser, appName)
	if err != nil || e == nil {
		return nil, err
	}
	return &RegistryRecord{
		AppName:          appName,
		DisplayName:      e.DisplayName,
		Publisher:        e.Publisher,
		Version:          e.DisplayVersion,
		InstallLocation:  e.InstallLocation,
		UninstallCommand: e.UninstallString,
		IconPath:         e.DisplayIcon,
		EstimatedSizeKB:  e.EstimatedSize,
		Scope:            scope,
	}, nil
}

func (windowsStore) Delete(appName string, scope Scope) error {
	return platform.DeleteUninstallEntry(scope == ScopeUser, appName)
}

func (windowsStore) Close() error { return nil }
