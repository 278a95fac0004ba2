// Package config loads the declarative install manifest the appstage CLI
// consumes: app identity, install source, and install options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crafted-tech/appstage/installer"
)

// Manifest is the top-level install manifest.
type Manifest struct {
	App     AppConfig     `yaml:"app"`
	Install InstallConfig `yaml:"install"`
	Files   []FileEntry   `yaml:"files"`
}

// AppConfig identifies the application being installed.
type AppConfig struct {
	Name           string `yaml:"name"`
	Publisher      string `yaml:"publisher"`
	Version        string `yaml:"version"`
	MainExecutable string `yaml:"main_executable"`
	Icon           string `yaml:"icon"`
}

// InstallConfig holds the install source and options.
type InstallConfig struct {
	BundleDir         string   `yaml:"bundle_dir"`
	Path              string   `yaml:"path"`
	DesktopShortcut   bool     `yaml:"desktop_shortcut"`
	StartMenuShortcut bool     `yaml:"startmenu_shortcut"`
	AddToRegistry     bool     `yaml:"add_to_registry"`
	StartMenuFolder   string   `yaml:"startmenu_folder"`
	Exclude           []string `yaml:"exclude"`
}

// FileEntry is one explicit (source, dest) install pair, the alternative to
// a bundle directory.
type FileEntry struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// DefaultManifest returns a manifest with sensible defaults: shortcuts and
// registry registration enabled, version 1.0.0.
func DefaultManifest() *Manifest {
	return &Manifest{
		App: AppConfig{
			Version: "1.0.0",
		},
		Install: InstallConfig{
			DesktopShortcut:   true,
			StartMenuShortcut: true,
			AddToRegistry:     true,
		},
	}
}

// Load reads and parses a manifest file, applying defaults for absent keys.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m := DefaultManifest()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if m.App.Name == "" {
		return nil, fmt.Errorf("manifest %s: app.name is required", path)
	}

	return m, nil
}

// Request converts the manifest into an InstallationRequest. The app name
// is sanitized the way the install engine expects it.
func (m *Manifest) Request() installer.InstallationRequest {
	req := installer.InstallationRequest{
		AppName:        installer.SanitizeAppName(m.App.Name),
		Publisher:      m.App.Publisher,
		Version:        m.App.Version,
		BundleDir:      m.Install.BundleDir,
		InstallPath:    m.Install.Path,
		MainExecutable: m.App.MainExecutable,
		IconPath:       m.App.Icon,
		Options: installer.Options{
			DesktopShortcut:   m.Install.DesktopShortcut,
			StartMenuShortcut: m.Install.StartMenuShortcut,
			AddToRegistry:     m.Install.AddToRegistry,
			StartMenuFolder:   m.Install.StartMenuFolder,
			ExcludePatterns:   m.Install.Exclude,
		},
	}
	for _, f := range m.Files {
		req.Files = append(req.Files, installer.FilePair{Source: f.Source, Dest: f.Dest})
	}
	return req
}
