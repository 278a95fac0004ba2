package installer

// RegistryRecord is one installed-application record as shown in the
// OS "installed programs" list. AppName is the unique key within a scope.
type RegistryRecord struct {
	AppName          string
	DisplayName      string
	Publisher        string
	Version          string
	InstallLocation  string
	UninstallCommand string
	IconPath         string
	EstimatedSizeKB  uint32
	Scope            Scope
}

// RecordStore persists RegistryRecords. On Windows this is the registry's
// Uninstall collection; elsewhere a SQLite database plays that role.
type RecordStore interface {
	// Put creates or replaces the record keyed by (AppName, Scope).
	Put(rec RegistryRecord) error

	// Get returns the record, or nil when none exists.
	Get(appName string, scope Scope) (*RegistryRecord, error)

	// Delete removes the record. Deleting a missing record is a no-op.
	Delete(appName string, scope Scope) error

	Close() error
}

// RegistryRecorder writes and removes installed-application records. It
// operates in exactly the scope it is given; scope fallback is an
// orchestrator decision, never a silent escalation here.
type RegistryRecorder struct {
	store RecordStore
}

// NewRegistryRecorder returns a recorder backed by store.
func NewRegistryRecorder(store RecordStore) *RegistryRecorder {
	return &RegistryRecorder{store: store}
}

// Register writes the record. A zero EstimatedSizeKB is filled in by
// summing the install location's file sizes; an unreadable tree simply
// leaves the size at zero.
func (r *RegistryRecorder) Register(rec RegistryRecord) error {
	if rec.DisplayName == "" {
		rec.DisplayName = rec.AppName
	}
	if rec.EstimatedSizeKB == 0 && rec.InstallLocation != "" {
		rec.EstimatedSizeKB = uint32(DirSize(rec.InstallLocation) / 1024)
	}
	if err := r.store.Put(rec); err != nil {
		return &RegistryError{Scope: rec.Scope, Err: err}
	}
	return nil
}

// Unregister removes the record for appName in scope. Removing a record
// that does not exist is a success: the store is already in the desired
// end state.
func (r *RegistryRecorder) Unregister(appName string, scope Scope) error {
	if err := r.store.Delete(appName, scope); err != nil {
		return &RegistryError{Scope: scope, Err: err}
	}
	return nil
}

// Lookup returns the existing record for appName in scope, or nil.
func (r *RegistryRecorder) Lookup(appName string, scope Scope) (*RegistryRecord, error) {
	rec, err := r.store.Get(appName, scope)
	if err != nil {
		return nil, &RegistryError{Scope: scope, Err: err}
	}
	return rec, nil
}
