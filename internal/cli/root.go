// Package cli is the terminal admin console: every command drives the same
// resource stores, derived views and form controllers the web console uses.
package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/client"
	"github.com/Abdulllah321/ekka-admin-dashboard/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Terminal console for the ekka admin API",
	Long:  "adminctl manages categories, products, banners, coupons, orders, reviews, stores and users against a running ekka admin API.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "ekka.yaml", "path to the adminctl config file")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// newClient builds the API client and, when a credential is configured, logs
// in so the session cookie covers the command's mutations.
func newClient(ctx context.Context) (*client.Client, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	c, err := client.New(cfg.ServerURL, cfg.ImageBaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.AdminUsername != "" {
		if _, err := c.Login(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("login failed: %w", err)
		}
	}
	return c, nil
}

// table writes aligned rows to stdout.
func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printRow(w, header)
	for _, row := range rows {
		printRow(w, row)
	}
	w.Flush()
}

func printRow(w *tabwriter.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
