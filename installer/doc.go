// Package installer implements the appstage install engine: copying an
// application bundle into an install directory, creating desktop and
// start-menu shortcuts, recording the app in the OS installed-programs
// store, and generating an uninstall script.
//
// # Components
//
//   - Environment: resolved well-known paths, privilege level, and scope
//     preference, passed explicitly into each component (no hidden globals)
//   - CopyTree / CopyFiles: directory and file-pair copies with exclusion
//     globs and per-file progress
//   - ShortcutManager: create/remove desktop and start-menu shortcuts
//   - UninstallScriptGenerator: renders the textual uninstaller into the
//     install directory
//   - RegistryRecorder: writes/removes installed-application records through
//     a RecordStore (Windows registry, SQLite elsewhere)
//   - InstallOrchestrator / UninstallOrchestrator: sequence the above into
//     one transaction with progress reporting and warning aggregation
//
// # Basic Usage
//
//	env, err := installer.DetectEnvironment()
//	if err != nil {
//	    return err
//	}
//	store, err := installer.OpenDefaultStore(env)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	orch := installer.NewInstallOrchestrator(env, store, log)
//	app, err := orch.Install(ctx, installer.InstallationRequest{
//	    AppName:   "DemoApp",
//	    BundleDir: bundleDir,
//	    Options:   installer.Options{DesktopShortcut: true, AddToRegistry: true},
//	}, onProgress)
//
// # Failure Semantics
//
// Validation and copy failures abort the installation; everything after the
// copy degrades to a partial success with warnings collected on the result.
// The same policy applies to uninstallation: individual removal failures are
// reported as warnings and the run continues.
package installer
