package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/nzsnyn/bejalen/app"
)

func newAdminCmd() *cobra.Command {
	admin := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
		Args:  cobra.NoArgs,
	}

	create := &cobra.Command{
		Use:   "create <username>",
		Short: "Create an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, _ := cmd.Flags().GetString("password")
			if password == "" {
				password = os.Getenv("BEJALEN_ADMIN_PASSWORD")
			}
			if password == "" {
				return errors.New("password is required, use --password or BEJALEN_ADMIN_PASSWORD")
			}
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := app.OpenDB(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer app.CloseDB(db)

			a, err := app.NewAuthService(db).CreateAdmin(cmd.Context(), app.AdminInput{
				Username: args[0],
				Password: password,
				Email:    email,
				Name:     name,
			})
			if err != nil {
				return errors.New(app.ErrorMessage(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.Green.Sprint("created admin"), a.Username)
			return nil
		},
	}
	create.Flags().String("password", "", "Password for the new account")
	create.Flags().String("email", "", "Email address")
	create.Flags().String("name", "", "Display name")

	admin.AddCommand(create)
	return admin
}
