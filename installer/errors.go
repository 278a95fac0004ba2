package installer

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned when an operation was cancelled by the caller.
var ErrCancelled = errors.New("operation cancelled")

// ValidationError indicates a malformed installation request. It is always
// returned before any side effect has taken place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// SourceNotFoundError indicates a missing source file or bundle directory.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source not found: %s", e.Path)
}

// CopyError indicates a failed file copy. The destination may hold a
// partial tree; no rollback is attempted.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s: %v", e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }

// ShortcutError indicates a failed shortcut operation. Warning-level: the
// orchestrator records it and continues.
type ShortcutError struct {
	Location Location
	Name     string
	Err      error
}

func (e *ShortcutError) Error() string {
	return fmt.Sprintf("%s shortcut %q: %v", e.Location, e.Name, e.Err)
}

func (e *ShortcutError) Unwrap() error { return e.Err }

// RegistryError indicates a failed installed-programs store operation.
// Warning-level: the orchestrator may retry in the other scope.
type RegistryError struct {
	Scope Scope
	Err   error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry (%s): %v", e.Scope, e.Err)
}

func (e *RegistryError) Unwrap() error { return e.Err }

// UninstallerError indicates the uninstall script could not be generated.
// Warning-level, but it disables registry linkage for the install.
type UninstallerError struct {
	Err error
}

func (e *UninstallerError) Error() string {
	return fmt.Sprintf("generate uninstaller: %v", e.Err)
}

func (e *UninstallerError) Unwrap() error { return e.Err }
