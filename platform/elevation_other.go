//go:build !windows

package platform

import (
	"errors"
	"os"
)

// ErrElevationDeclined indicates elevation was requested but not available.
var ErrElevationDeclined = errors.New("root privileges required")

// IsElevated checks if the current process is running as root.
func IsElevated() bool {
	return os.Geteuid() == 0
}

// EnsureElevated verifies the current process is running as root. There is
// no UAC analog here; callers are expected to re-run under sudo.
func EnsureElevated() error {
	if IsElevated() {
		return nil
	}
	return ErrElevationDeclined
}
