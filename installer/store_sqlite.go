package installer

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS uninstall_entries (
    app_name TEXT NOT NULL,
    scope INTEGER NOT NULL,
    display_name TEXT,
    publisher TEXT,
    display_version TEXT,
    install_location TEXT,
    uninstall_string TEXT,
    display_icon TEXT,
    estimated_size_kb INTEGER,
    no_modify INTEGER DEFAULT 1,
    no_repair INTEGER DEFAULT 1,
    PRIMARY KEY (app_name, scope)
);
`

// SQLiteStore is the portable RecordStore: an "Uninstall collection" kept in
// a SQLite database. Used on platforms without a system registry and in
// tests (with ":memory:").
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the store at dbPath.
func OpenSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create record store schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Put creates or replaces the record keyed by (AppName, Scope).
func (s *SQLiteStore) Put(rec RegistryRecord) error {
	query := `
		INSERT OR REPLACE INTO uninstall_entries
		(app_name, scope, display_name, publisher, display_version,
		 install_location, uninstall_string, display_icon, estimated_size_kb,
		 no_modify, no_repair)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, 1)
	`
	_, err := s.db.Exec(query,
		rec.AppName,
		int(rec.Scope),
		rec.DisplayName,
		rec.Publisher,
		rec.Version,
		rec.InstallLocation,
		rec.UninstallCommand,
		rec.IconPath,
		rec.EstimatedSizeKB,
	)
	if err != nil {
		return fmt.Errorf("put record %s: %w", rec.AppName, err)
	}
	return nil
}

// Get returns the record, or nil when none exists.
func (s *SQLiteStore) Get(appName string, scope Scope) (*RegistryRecord, error) {
	query := `
		SELECT app_name, scope, display_name, publisher, display_version,
		       install_location, uninstall_string, display_icon, estimated_size_kb
		FROM uninstall_entries
		WHERE app_name = ? AND scope = ?
	`
	row := s.db.QueryRow(query, appName, int(scope))

	var rec RegistryRecord
	var scopeInt int
	err := row.Scan(
		&rec.AppName,
		&scopeInt,
		&rec.DisplayName,
		&rec.Publisher,
		&rec.Version,
		&rec.InstallLocation,
		&rec.UninstallCommand,
		&rec.IconPath,
		&rec.EstimatedSizeKB,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", appName, err)
	}
	rec.Scope = Scope(scopeInt)
	return &rec, nil
}

// Delete removes the record. Deleting a missing record is a no-op.
func (s *SQLiteStore) Delete(appName string, scope Scope) error {
	_, err := s.db.Exec(
		`DELETE FROM uninstall_entries WHERE app_name = ? AND scope = ?`,
		appName, int(scope),
	)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", appName, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
