package installer

import (
	"fmt"
	"path/filepath"

	"github.com/crafted-tech/appstage/platform"
)

// Scope selects where an installed-application record is visible: to the
// current user only, or to all users of the machine.
type Scope int

const (
	ScopeUser Scope = iota
	ScopeMachine
)

func (s Scope) String() string {
	if s == ScopeMachine {
		return "machine"
	}
	return "user"
}

// Environment carries the resolved paths and privilege state every component
// needs. Components never consult globals; tests substitute temp directories.
type Environment struct {
	DesktopDir     string // where desktop shortcuts are written
	StartMenuDir   string // where start-menu shortcuts are written
	ProgramFiles   string // default root for install directories
	DataDir        string // per-user appstage data (portable store, logs)
	StorePath      string // overrides the portable store location when set
	Elevated       bool
	PreferredScope Scope
}

// DetectEnvironment resolves the current user's environment from the
// platform leaf calls.
func DetectEnvironment() (*Environment, error) {
	desktop, err := platform.UserDesktopPath()
	if err != nil {
		return nil, fmt.Errorf("resolve desktop path: %w", err)
	}
	startMenu, err := platform.UserStartMenuPath()
	if err != nil {
		return nil, fmt.Errorf("resolve start menu path: %w", err)
	}
	data, err := platform.UserDataPath()
	if err != nil {
		return nil, fmt.Errorf("resolve data path: %w", err)
	}

	return &Environment{
		DesktopDir:     desktop,
		StartMenuDir:   startMenu,
		ProgramFiles:   platform.ProgramFilesPath(),
		DataDir:        filepath.Join(data, "appstage"),
		Elevated:       platform.IsElevated(),
		PreferredScope: ScopeUser,
	}, nil
}

// DefaultInstallPath returns the conventional install directory for an app:
// the Program Files root joined with the app name.
func (e *Environment) DefaultInstallPath(appName string) string {
	return filepath.Join(e.ProgramFiles, appName)
}

// PortableStorePath returns the location of the SQLite record store used on
// platforms without a system registry.
func (e *Environment) PortableStorePath() string {
	if e.StorePath != "" {
		return e.StorePath
	}
	return filepath.Join(e.DataDir, "installed.db")
}
