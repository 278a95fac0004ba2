package platform

import (
	"path/filepath"
	"testing"
)

func TestDeleteShortcutMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone"+ShortcutExt())
	if err := DeleteShortcut(path); err != nil {
		t.Fatalf("DeleteShortcut of missing file = %v, want nil", err)
	}
}
