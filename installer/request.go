package installer

import (
	"os"
	"regexp"
	"strings"
)

const (
	// maxAppNameLength bounds the app name; it doubles as a registry key
	// and a shortcut filename.
	maxAppNameLength = 50

	// maxInstallPathLength reflects the legacy MAX_PATH constraint of the
	// target platform family.
	maxInstallPathLength = 260
)

// invalidNameChars are the characters Windows forbids in filenames.
const invalidNameChars = `<>:"/\|?*`

// unsafeNameChars would break the generated uninstall script, where the
// name is interpolated into quoted shell strings and a SQL literal.
const unsafeNameChars = "'$`"

// FilePair names one install source and its destination relative to the
// install directory. A directory source whose Dest ends with a path
// separator has its contents merged into Dest; a directory source with a
// plain Dest replaces any existing subtree at Dest.
type FilePair struct {
	Source string
	Dest   string
}

// Options controls the optional stages of an installation.
type Options struct {
	DesktopShortcut   bool
	StartMenuShortcut bool
	AddToRegistry     bool
	StartMenuFolder   string   // publisher subfolder in the start menu, "" for root
	ExcludePatterns   []string // extra globs excluded from bundle copies
}

// InstallationRequest describes one installation. Exactly one of Files or
// BundleDir must be set.
type InstallationRequest struct {
	AppName        string
	Publisher      string
	Version        string
	Files          []FilePair
	BundleDir      string
	InstallPath    string // empty selects Environment.DefaultInstallPath
	MainExecutable string // relative to the install directory; empty triggers a search
	IconPath       string // absolute, or relative to the install directory
	Options        Options
}

// Validate checks the request without touching the filesystem destination.
// It verifies name syntax, source existence, and install path length, and
// is always called before any side effect.
func (r *InstallationRequest) Validate() error {
	name := strings.TrimSpace(r.AppName)
	if name == "" {
		return &ValidationError{Field: "app_name", Reason: "must not be empty"}
	}
	if len(name) > maxAppNameLength {
		return &ValidationError{Field: "app_name", Reason: "must be 50 characters or fewer"}
	}
	if strings.ContainsAny(name, invalidNameChars) {
		return &ValidationError{Field: "app_name", Reason: `must not contain <>:"/\|?*`}
	}
	if strings.ContainsAny(name, unsafeNameChars) {
		return &ValidationError{Field: "app_name", Reason: "must not contain quote, dollar, or backtick characters"}
	}

	if len(r.Files) == 0 && r.BundleDir == "" {
		return &ValidationError{Field: "source", Reason: "either files or bundle_dir must be provided"}
	}
	if len(r.Files) > 0 && r.BundleDir != "" {
		return &ValidationError{Field: "source", Reason: "files and bundle_dir are mutually exclusive"}
	}

	if r.BundleDir != "" {
		info, err := os.Stat(r.BundleDir)
		if err != nil {
			return &SourceNotFoundError{Path: r.BundleDir}
		}
		if !info.IsDir() {
			return &ValidationError{Field: "bundle_dir", Reason: "not a directory"}
		}
	}
	for _, pair := range r.Files {
		if _, err := os.Stat(pair.Source); err != nil {
			return &SourceNotFoundError{Path: pair.Source}
		}
	}

	if len(r.InstallPath) > maxInstallPathLength {
		return &ValidationError{Field: "install_path", Reason: "exceeds 260 characters"}
	}

	return nil
}

var (
	nonAlnum   = regexp.MustCompile(`[^a-zA-Z0-9]`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// SanitizeAppName collapses a raw project name into an installable one:
// non-alphanumeric runs become single spaces.
func SanitizeAppName(name string) string {
	name = nonAlnum.ReplaceAllString(name, " ")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
