package main

import (
	"github.com/spf13/cobra"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

// NewRootCmd creates the bejalen admin command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bejalen",
		Short:         "bejalen - maintenance commands for the Bejalen site backend",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().String("config", "", "Path to configuration file")

	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newScanCmd())
	root.AddCommand(newAdminCmd())
	root.AddCommand(newDemoCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (*models.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	return app.LoadConfig(path)
}
