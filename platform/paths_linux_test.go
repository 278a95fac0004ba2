//go:build linux

package platform

import (
	"path/filepath"
	"testing"
)

func TestUserDesktopPathEnvOverride(t *testing.T) {
	t.Setenv("XDG_DESKTOP_DIR", "/custom/desktop")
	got, err := UserDesktopPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/custom/desktop" {
		t.Errorf("UserDesktopPath = %q", got)
	}
}

func TestUserDataPathEnvOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	got, err := UserDataPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/custom/data" {
		t.Errorf("UserDataPath = %q", got)
	}
}

func TestUserStartMenuPathUnderData(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	got, err := UserStartMenuPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join("/custom/data", "applications") {
		t.Errorf("UserStartMenuPath = %q", got)
	}
}

func TestProgramFilesPath(t *testing.T) {
	if ProgramFilesPath() != "/opt" {
		t.Errorf("ProgramFilesPath = %q", ProgramFilesPath())
	}
}
