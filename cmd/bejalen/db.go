package main

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/nzsnyn/bejalen/app"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := app.OpenDB(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer app.CloseDB(db)

			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready in %s\n", color.Cyan.Sprint(cfg.Database.Path))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default admin, tour packages and gallery items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := app.OpenDB(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer app.CloseDB(db)

			res, err := app.Seed(cmd.Context(), db, force)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if res.Skipped {
				fmt.Fprintf(out, "%s database was seeded at %s, use --force to seed again\n",
					color.Yellow.Sprint("skipped:"), res.SeededAt.Format("2006-01-02 15:04:05"))
				return nil
			}
			fmt.Fprintf(out, "%s admin created: %v, packages added: %s, gallery items added: %s\n",
				color.Green.Sprint("seeded:"), res.AdminCreated,
				color.Cyan.Sprint(res.Packages), color.Cyan.Sprint(res.GalleryItems))
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "Seed even if the database was seeded before")
	return cmd
}
