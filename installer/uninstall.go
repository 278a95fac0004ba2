package installer

import (
	"context"
	"fmt"
	"os"
)

// Report collects the non-fatal problems of an uninstallation.
type Report struct {
	Warnings []error
}

// UninstallOrchestrator reverses an installation: shortcuts, registry
// records in both scopes, then the install directory. It never aborts
// early; individual failures become warnings and only a failed directory
// removal makes the run itself fail.
type UninstallOrchestrator struct {
	env   *Environment
	store RecordStore
	log   *Logger
}

// NewUninstallOrchestrator returns an orchestrator using env and store.
// log may be nil.
func NewUninstallOrchestrator(env *Environment, store RecordStore, log *Logger) *UninstallOrchestrator {
	return &UninstallOrchestrator{env: env, store: store, log: log}
}

// Uninstall removes appName's shortcuts and registry records, then deletes
// installPath recursively when it is provided and present. onProgress may
// be nil.
func (o *UninstallOrchestrator) Uninstall(ctx context.Context, appName, installPath, startMenuFolder string, onProgress ProgressFunc) (*Report, error) {
	recorder := NewRegistryRecorder(o.store)
	shortcuts := NewShortcutManager(o.env)
	o.log.Info("uninstalling %q (install path: %s)", appName, installPath)

	steps := []Step{
		{
			Name: "Remove shortcuts",
			Action: func() StepResult {
				type target struct {
					loc    Location
					folder string
				}
				targets := []target{
					{LocationDesktop, ""},
					{LocationStartMenu, ""},
				}
				if startMenuFolder != "" {
					targets = append(targets, target{LocationStartMenu, startMenuFolder})
				}

				var removed int
				var errs []error
				for _, tg := range targets {
					ok, err := shortcuts.Remove(appName, tg.loc, tg.folder)
					if err != nil {
						errs = append(errs, err)
					} else if ok {
						removed++
					}
				}
				if len(errs) > 0 {
					return Warning(fmt.Errorf("remove shortcuts: %w", errs[0]))
				}
				if removed == 0 {
					return Skipped("none found")
				}
				return Success(fmt.Sprintf("%d removed", removed))
			},
		},
		{
			Name: "Remove registry entries",
			Action: func() StepResult {
				// Both scopes; unregistering an absent record is a success.
				var errs []error
				for _, scope := range []Scope{ScopeUser, ScopeMachine} {
					if err := recorder.Unregister(appName, scope); err != nil {
						errs = append(errs, err)
					}
				}
				if len(errs) > 0 {
					return Warning(errs[0])
				}
				return Success("")
			},
		},
		{
			Name: "Delete installation directory",
			Action: func() StepResult {
				if installPath == "" {
					return Skipped("no path provided")
				}
				if !DirExists(installPath) {
					return Skipped("not present")
				}
				if err := os.RemoveAll(installPath); err != nil {
					return Failed(fmt.Errorf("delete %s: %w", installPath, err))
				}
				return Success(installPath)
			},
		},
	}

	warnings, err := runSteps(ctx, steps, onProgress, o.log)
	if err != nil {
		return &Report{Warnings: warnings}, err
	}

	o.log.Info("uninstallation of %q complete (%d warnings)", appName, len(warnings))
	return &Report{Warnings: warnings}, nil
}
