package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crafted-tech/appstage/installer"
)

var (
	uninstallPath   string
	uninstallFolder string
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <app name>",
	Short: "Remove a previously installed application",
	Long: `Uninstall removes an application's shortcuts, uninstall records, and
install directory. The install directory is looked up from the uninstall
record when --path is not given.`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallPath, "path", "", "install directory (default: from the uninstall record)")
	uninstallCmd.Flags().StringVar(&uninstallFolder, "startmenu-folder", "", "start menu folder the app was installed under")
}

// recordInstallPath looks the install directory up from the uninstall
// record, checking user scope first and then machine scope. Returns ""
// when no record exists.
func recordInstallPath(store installer.RecordStore, appName string) string {
	recorder := installer.NewRegistryRecorder(store)
	for _, scope := range []installer.Scope{installer.ScopeUser, installer.ScopeMachine} {
		rec, err := recorder.Lookup(appName, scope)
		if err == nil && rec != nil {
			return rec.InstallLocation
		}
	}
	return ""
}

func runUninstall(cmd *cobra.Command, args []string) error {
	appName := installer.SanitizeAppName(args[0])

	env, err := installer.DetectEnvironment()
	if err != nil {
		return err
	}
	store, err := installer.OpenDefaultStore(env)
	if err != nil {
		return err
	}
	defer store.Close()

	log, err := installer.NewLogger("uninstall")
	if err != nil {
		return err
	}
	defer log.Close()

	installPath := uninstallPath
	if installPath == "" {
		installPath = recordInstallPath(store, appName)
	}

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	fmt.Printf("Uninstalling %s\n", appName)

	var tracker installer.Tracker
	orch := installer.NewUninstallOrchestrator(env, store, log)
	report, err := orch.Uninstall(ctx, appName, installPath, uninstallFolder, tracker.Func())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Uninstall log: %s\n", log.Path())
		return err
	}

	for _, w := range report.Warnings {
		fmt.Printf("Warning: %v\n", w)
	}
	fmt.Println("Uninstall complete")
	return nil
}
