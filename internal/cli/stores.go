package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var storesCmd = &cobra.Command{
	Use:   "stores",
	Short: "Inspect vendor stores",
}

var storesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vendor stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		stores := store.NewStores(c)
		if err := stores.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(stores.Items()))
		for _, s := range stores.Items() {
			rows = append(rows, []string{
				s.ID, s.Name, s.ContactEmail,
				fmt.Sprint(len(s.Products)), fmt.Sprintf("%.1f", s.Rating),
			})
		}
		table([]string{"ID", "NAME", "EMAIL", "PRODUCTS", "RATING"}, rows)
		return nil
	},
}

var storesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one vendor store with its orders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		stores := store.NewStores(c)
		s, err := stores.LoadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n  %s\n  products: %d  coupons: %d  orders: %d  rating: %.1f\n",
			s.Name, s.ID, s.Description, len(s.Products), len(s.Coupons), len(s.Orders), s.Rating)
		return nil
	},
}

func init() {
	storesCmd.AddCommand(storesListCmd, storesGetCmd)
	rootCmd.AddCommand(storesCmd)
}
