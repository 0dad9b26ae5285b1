package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nzsnyn/bejalen/client"
)

func newTable() table.Model {
	width, _, err := term.GetSize(os.Stderr.Fd())
	if err != nil {
		width = 100 // fallback
	}

	groupCol := 30
	sizeCol := 12
	nameCol := width - groupCol - sizeCol - 6
	if nameCol < 20 {
		nameCol = 20
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Folder", Width: groupCol},
			{Title: "Image", Width: nameCol},
			{Title: "Size", Width: sizeCol},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(styles)
	return t
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	c := client.New(viper.GetString("server"))
	if err := c.Login(ctx, viper.GetString("username"), viper.GetString("password")); err != nil {
		return err
	}

	scan, err := c.ScanAssets(ctx)
	if err != nil {
		return err
	}

	m := newModel(buildEntries(scan.GroupedImages), newTable())
	// the picked url goes to stdout, so the UI is drawn on stderr
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error starting program: %w", err)
	}

	if picked := final.(model).selected; picked != "" {
		fmt.Fprintln(cmd.OutOrStdout(), picked)
	}
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "picker",
		Short:        "Pick an image from the public folder and print its url",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().String("server", "http://localhost:8080", "Bejalen server base URL")
	rootCmd.Flags().String("username", "admin", "Admin username")
	rootCmd.Flags().String("password", "", "Admin password (or BEJALEN_ADMIN_PASSWORD)")

	viper.SetEnvPrefix("BEJALEN")
	viper.BindEnv("password", "BEJALEN_ADMIN_PASSWORD")
	viper.BindEnv("username", "BEJALEN_ADMIN_USERNAME")
	viper.BindPFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
