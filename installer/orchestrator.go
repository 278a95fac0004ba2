package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// InstalledApp is the result of a successful (possibly degraded)
// installation.
type InstalledApp struct {
	AppName         string
	InstallPath     string
	Executable      string // resolved entry point, empty when none was found
	UninstallerPath string // empty when uninstaller generation failed
	Action          InstallAction
	Warnings        []error
}

// InstallOrchestrator sequences one installation: validate, copy, resolve
// the entry point, generate the uninstaller, create shortcuts, register.
// Only validation and copy failures abort; later stages degrade to partial
// success with warnings on the result.
type InstallOrchestrator struct {
	env   *Environment
	store RecordStore
	log   *Logger
}

// NewInstallOrchestrator returns an orchestrator using env and store.
// log may be nil.
func NewInstallOrchestrator(env *Environment, store RecordStore, log *Logger) *InstallOrchestrator {
	return &InstallOrchestrator{env: env, store: store, log: log}
}

// installStepCount is the number of steps after validation; progress
// denominators depend on it.
const installStepCount = 5

// Install runs the installation sequence. onProgress may be nil. The
// context is checked between steps (cooperative cancellation, best-effort:
// a running copy is not interrupted mid-file).
func (o *InstallOrchestrator) Install(ctx context.Context, req InstallationRequest, onProgress ProgressFunc) (*InstalledApp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(req.AppName)
	installPath := req.InstallPath
	if installPath == "" {
		installPath = o.env.DefaultInstallPath(appName)
	}
	if len(installPath) > maxInstallPathLength {
		return nil, &ValidationError{Field: "install_path", Reason: "exceeds 260 characters"}
	}

	recorder := NewRegistryRecorder(o.store)
	shortcuts := NewShortcutManager(o.env)
	uninstaller := NewUninstallScriptGenerator(o.env)

	result := &InstalledApp{
		AppName:     appName,
		InstallPath: installPath,
		Action:      o.detectAction(recorder, appName, req.Version),
	}
	o.log.Info("installing %q to %s (%s)", appName, installPath, result.Action)

	iconPath := req.IconPath
	if iconPath != "" && !filepath.IsAbs(iconPath) {
		iconPath = filepath.Join(installPath, iconPath)
	}

	steps := []Step{
		{
			Name: "Copy files",
			Action: func() StepResult {
				sub := func(copied, total int, name string) {
					if onProgress != nil {
						onProgress(0, installStepCount, fmt.Sprintf("Copying %s (%d/%d)", name, copied, total))
					}
				}
				var count int
				var err error
				if req.BundleDir != "" {
					patterns := append(DefaultExcludePatterns, req.Options.ExcludePatterns...)
					count, err = CopyTree(req.BundleDir, installPath, patterns, sub)
				} else {
					count, err = CopyFiles(req.Files, installPath, sub)
				}
				if err != nil {
					return Failed(err)
				}
				return Success(fmt.Sprintf("%d files", count))
			},
		},
		{
			Name: "Resolve entry point",
			Action: func() StepResult {
				if req.MainExecutable != "" {
					result.Executable = filepath.Join(installPath, req.MainExecutable)
					return Success(result.Executable)
				}
				exe := findEntryPoint(installPath)
				if exe == "" {
					return Warning(fmt.Errorf("no entry point found under %s", installPath))
				}
				result.Executable = exe
				return Success(exe)
			},
		},
		{
			Name: "Generate uninstaller",
			Action: func() StepResult {
				path, err := uninstaller.Generate(appName, installPath, req.Options.StartMenuFolder)
				if err != nil {
					return Warning(err)
				}
				result.UninstallerPath = path
				return Success(path)
			},
		},
		{
			Name: "Create shortcuts",
			Action: func() StepResult {
				if !req.Options.DesktopShortcut && !req.Options.StartMenuShortcut {
					return Skipped("not requested")
				}
				if result.Executable == "" {
					return Warning(errors.New("shortcuts skipped: no entry point"))
				}

				var errs []error
				if req.Options.DesktopShortcut {
					_, err := shortcuts.Create(ShortcutSpec{
						Target:      result.Executable,
						DisplayName: appName,
						IconPath:    iconPath,
						Description: appName,
						Location:    LocationDesktop,
					})
					if err != nil {
						errs = append(errs, err)
					}
				}
				if req.Options.StartMenuShortcut {
					_, err := shortcuts.Create(ShortcutSpec{
						Target:      result.Executable,
						DisplayName: appName,
						IconPath:    iconPath,
						Description: appName,
						Location:    LocationStartMenu,
						Folder:      req.Options.StartMenuFolder,
					})
					if err != nil {
						errs = append(errs, err)
					}
				}
				if len(errs) > 0 {
					return Warning(errors.Join(errs...))
				}
				return Success("")
			},
		},
		{
			Name: "Register application",
			Action: func() StepResult {
				if !req.Options.AddToRegistry {
					return Skipped("not requested")
				}
				if result.UninstallerPath == "" {
					return Warning(errors.New("registry entry skipped: no uninstaller available"))
				}

				rec := RegistryRecord{
					AppName:          appName,
					DisplayName:      appName,
					Publisher:        req.Publisher,
					Version:          req.Version,
					InstallLocation:  installPath,
					UninstallCommand: result.UninstallerPath,
					IconPath:         iconPath,
					Scope:            o.env.PreferredScope,
				}
				err := recorder.Register(rec)
				if err == nil {
					return Success(rec.Scope.String() + " scope")
				}

				// The recorder never escalates on its own; retrying in the
				// other scope is this orchestrator's call.
				if fallback, ok := o.fallbackScope(rec.Scope); ok {
					rec.Scope = fallback
					if err2 := recorder.Register(rec); err2 == nil {
						return Warning(fmt.Errorf("registered in %s scope after: %w", fallback, err))
					}
				}
				return Warning(err)
			},
		},
	}

	warnings, err := runSteps(ctx, steps, onProgress, o.log)
	result.Warnings = warnings
	if err != nil {
		return nil, err
	}

	o.log.Info("installation of %q complete (%d warnings)", appName, len(warnings))
	return result, nil
}

// fallbackScope returns the scope to retry registration in, if any.
// Machine scope is only attempted when elevated rights appear available;
// dropping back to user scope is always allowed.
func (o *InstallOrchestrator) fallbackScope(tried Scope) (Scope, bool) {
	if tried == ScopeUser {
		if o.env.Elevated {
			return ScopeMachine, true
		}
		return 0, false
	}
	return ScopeUser, true
}

// detectAction classifies the install against any existing record in either
// scope. Lookup failures are treated as "not installed".
func (o *InstallOrchestrator) detectAction(recorder *RegistryRecorder, appName, version string) InstallAction {
	for _, scope := range []Scope{ScopeUser, ScopeMachine} {
		if rec, err := recorder.Lookup(appName, scope); err == nil && rec != nil {
			return DetermineAction(rec.Version, version)
		}
	}
	return ActionFreshInstall
}

// entryPointRank orders entry point candidates: a "run" launcher beats a
// bare executable, which beats batch and shell scripts. -1 means not a
// candidate.
func entryPointRank(name string) int {
	base := strings.ToLower(filepath.Base(name))
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	launcher := stem == "run"
	switch ext {
	case ".exe":
		if launcher {
			return 0
		}
		return 1
	case ".bat", ".cmd":
		if launcher {
			return 0
		}
		return 2
	case ".sh":
		if launcher {
			return 0
		}
		return 3
	}
	return -1
}

// findEntryPoint searches the installed tree for an executable or batch
// entry point. Returns "" when none is found.
func findEntryPoint(installPath string) string {
	best := ""
	bestRank := -1
	_ = filepath.WalkDir(installPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		rank := entryPointRank(path)
		if rank < 0 {
			return nil
		}
		if bestRank == -1 || rank < bestRank {
			best = path
			bestRank = rank
		}
		return nil
	})
	return best
}
