//go:build !windows

package installer

import (
	"fmt"
	"os"
	"path/filepath"
)

// OpenDefaultStore returns the record store for this platform: the per-user
// SQLite database under the appstage data directory.
func OpenDefaultStore(env *Environment) (RecordStore, error) {
	path := env.PortableStorePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return OpenSQLiteStore(path)
}
