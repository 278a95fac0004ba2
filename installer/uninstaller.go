package installer

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"runtime"
	"text/template"

	"github.com/crafted-tech/appstage/platform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// UninstallScriptGenerator renders the textual uninstaller into an install
// directory: a batch script on Windows, a shell script elsewhere. When run
// it attempts elevation, removes shortcuts and the installed-programs
// record, and deletes the install directory.
type UninstallScriptGenerator struct {
	env *Environment
}

// NewUninstallScriptGenerator returns a generator bound to env.
func NewUninstallScriptGenerator(env *Environment) *UninstallScriptGenerator {
	return &UninstallScriptGenerator{env: env}
}

// ScriptName returns the uninstaller filename for this platform.
func (g *UninstallScriptGenerator) ScriptName() string {
	if runtime.GOOS == "windows" {
		return "uninstall.bat"
	}
	return "uninstall.sh"
}

type uninstallScriptData struct {
	AppName         string
	InstallPath     string
	InstallParent   string
	InstallBase     string
	StartMenuFolder string
	DesktopDir      string
	StartMenuDir    string
	ShortcutExt     string
	StorePath       string
}

// Generate writes the uninstall script into installPath and returns the
// script's path.
func (g *UninstallScriptGenerator) Generate(appName, installPath, startMenuFolder string) (string, error) {
	name := g.ScriptName()
	tmplName := "templates/uninstall.sh.tmpl"
	if runtime.GOOS == "windows" {
		tmplName = "templates/uninstall.bat.tmpl"
	}

	tmpl, err := template.ParseFS(templateFS, tmplName)
	if err != nil {
		return "", &UninstallerError{Err: err}
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, uninstallScriptData{
		AppName:         appName,
		InstallPath:     installPath,
		InstallParent:   filepath.Dir(installPath),
		InstallBase:     filepath.Base(installPath),
		StartMenuFolder: startMenuFolder,
		DesktopDir:      g.env.DesktopDir,
		StartMenuDir:    g.env.StartMenuDir,
		ShortcutExt:     platform.ShortcutExt(),
		StorePath:       g.env.PortableStorePath(),
	})
	if err != nil {
		return "", &UninstallerError{Err: err}
	}

	scriptPath := filepath.Join(installPath, name)
	if err := os.WriteFile(scriptPath, buf.Bytes(), 0755); err != nil {
		return "", &UninstallerError{Err: err}
	}
	return scriptPath, nil
}
