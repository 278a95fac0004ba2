//go:build linux

package installer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShortcutCreateAndRemove(t *testing.T) {
	env := testEnv(t)
	mgr := NewShortcutManager(env)
	target := filepath.Join(t.TempDir(), "run.sh")
	writeFile(t, target, "#!/bin/sh\n")

	path, err := mgr.Create(ShortcutSpec{
		Target:      target,
		DisplayName: "Demo App",
		Description: "Demo App",
		Location:    LocationDesktop,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if filepath.Base(path) != "Demo App.desktop" {
		t.Errorf("path = %q", path)
	}

	content := readFile(t, path)
	if !strings.Contains(content, "Exec="+target) {
		t.Errorf("desktop entry missing Exec line:\n%s", content)
	}
	if !strings.Contains(content, "Name=Demo App") {
		t.Errorf("desktop entry missing Name line:\n%s", content)
	}

	removed, err := mgr.Remove("Demo App", LocationDesktop, "")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Error("Remove should report true for an existing shortcut")
	}
	if FileExists(path) {
		t.Error("shortcut file should be gone")
	}
}

func TestShortcutRemoveMissing(t *testing.T) {
	mgr := NewShortcutManager(testEnv(t))
	removed, err := mgr.Remove("Never Installed", LocationDesktop, "")
	if err != nil {
		t.Fatalf("Remove of missing shortcut = %v, want nil", err)
	}
	if removed {
		t.Error("Remove of missing shortcut should report false")
	}
}

func TestShortcutMissingIconDropped(t *testing.T) {
	env := testEnv(t)
	mgr := NewShortcutManager(env)
	target := filepath.Join(t.TempDir(), "run.sh")
	writeFile(t, target, "#!/bin/sh\n")

	path, err := mgr.Create(ShortcutSpec{
		Target:      target,
		DisplayName: "Demo App",
		IconPath:    filepath.Join(t.TempDir(), "missing.png"),
		Location:    LocationDesktop,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if strings.Contains(readFile(t, path), "Icon=") {
		t.Error("missing icon should be dropped from the entry")
	}
}

func TestShortcutStartMenuFolder(t *testing.T) {
	env := testEnv(t)
	mgr := NewShortcutManager(env)
	target := filepath.Join(t.TempDir(), "run.sh")
	writeFile(t, target, "#!/bin/sh\n")

	path, err := mgr.Create(ShortcutSpec{
		Target:      target,
		DisplayName: "Demo App",
		Location:    LocationStartMenu,
		Folder:      "Acme Tools",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantDir := filepath.Join(env.StartMenuDir, "Acme Tools")
	if filepath.Dir(path) != wantDir {
		t.Errorf("path = %q, want under %q", path, wantDir)
	}

	if _, err := mgr.Remove("Demo App", LocationStartMenu, "Acme Tools"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// The now-empty folder is pruned.
	if _, err := os.Stat(wantDir); !os.IsNotExist(err) {
		t.Error("empty start menu folder should be removed")
	}
}
