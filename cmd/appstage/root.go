package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appstage",
	Short: "Stage application installs: copy files, shortcuts, uninstall records",
	Long: `appstage installs an application bundle onto the local machine and
registers it for later removal.

An install copies the bundle into the install directory, creates desktop
and start menu shortcuts, writes an uninstall record, and drops an
uninstall script into the install directory.

Examples:
  # Install from a manifest
  appstage install -f appstage.yaml

  # Install for all users (may prompt for elevation)
  appstage install -f appstage.yaml --all-users

  # Remove a previously installed application
  appstage uninstall "Demo App"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
