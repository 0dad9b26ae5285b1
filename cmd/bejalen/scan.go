package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the images of the public directory grouped by folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			jsonMode, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if root == "" {
				root = cfg.Server.PublicDir
			}

			walker, err := app.NewAssetWalker(cfg.Assets, app.NewLoggerTo(cmd.ErrOrStderr(), cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			scan, err := walker.Discover(root)
			if err != nil {
				return err
			}

			if jsonMode {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(scan)
			}
			printScan(cmd, scan)
			return nil
		},
	}
	cmd.Flags().String("root", "", "Directory to scan (defaults to server.public_dir)")
	cmd.Flags().Bool("json", false, "Print the scan result as JSON")
	return cmd
}

func printScan(cmd *cobra.Command, scan *models.AssetScan) {
	out := cmd.OutOrStdout()
	groups := make([]string, 0, len(scan.GroupedImages))
	for g := range scan.GroupedImages {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		fmt.Fprintf(out, "%s (%d)\n", color.Cyan.Sprint(g), len(scan.GroupedImages[g]))
		for _, img := range scan.GroupedImages[g] {
			fmt.Fprintf(out, "  %s\n", img.URL)
		}
	}
	fmt.Fprintf(out, "%s %d images in %d folders\n", color.Green.Sprint("total:"), scan.TotalImages, len(groups))
}
