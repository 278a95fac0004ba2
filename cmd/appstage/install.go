package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/crafted-tech/appstage/config"
	"github.com/crafted-tech/appstage/installer"
	"github.com/crafted-tech/appstage/platform"
)

var (
	installManifest string
	installPath     string
	installAllUsers bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install an application from a manifest",
	Long: `Install reads an install manifest, copies the application bundle into
the install directory, creates shortcuts, and registers the application
for uninstall.

The install runs in the background while progress is rendered on the
terminal. A log file is written to the system temp directory; its path
is printed when the install fails.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installManifest, "file", "f", "appstage.yaml", "install manifest path")
	installCmd.Flags().StringVar(&installPath, "path", "", "install directory (overrides manifest)")
	installCmd.Flags().BoolVar(&installAllUsers, "all-users", false, "install for all users (requires elevation)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	manifest, err := config.Load(installManifest)
	if err != nil {
		return err
	}

	req := manifest.Request()
	if installPath != "" {
		req.InstallPath = installPath
	}

	env, err := installer.DetectEnvironment()
	if err != nil {
		return err
	}
	if installAllUsers {
		if err := platform.EnsureElevated(); err != nil {
			return fmt.Errorf("--all-users: %w", err)
		}
		env.Elevated = true
		env.PreferredScope = installer.ScopeMachine
	}

	store, err := installer.OpenDefaultStore(env)
	if err != nil {
		return err
	}
	defer store.Close()

	log, err := installer.NewLogger("install")
	if err != nil {
		return err
	}
	defer log.Close()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	fmt.Printf("Installing %s %s\n", req.AppName, req.Version)

	var tracker installer.Tracker
	orch := installer.NewInstallOrchestrator(env, store, log)

	type outcome struct {
		app *installer.InstalledApp
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		app, err := orch.Install(ctx, req, tracker.Func())
		done <- outcome{app, err}
	}()

	bar := newProgressBar(os.Stdout)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var result outcome
loop:
	for {
		select {
		case result = <-done:
			break loop
		case <-ticker.C:
			s := tracker.Latest()
			bar.Update(s.Current, s.Total, s.Message)
		}
	}
	if s := tracker.Latest(); s.Total > 0 {
		bar.Update(s.Current, s.Total, s.Message)
	}
	bar.Finish()

	if result.err != nil {
		fmt.Fprintf(os.Stderr, "Install log: %s\n", log.Path())
		return result.err
	}

	app := result.app
	fmt.Printf("Installed to %s (%s)\n", app.InstallPath, app.Action)
	for _, w := range app.Warnings {
		fmt.Printf("Warning: %v\n", w)
	}
	return nil
}
