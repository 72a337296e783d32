package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		users := store.NewUsers(c)
		if err := users.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(users.Items()))
		for _, u := range users.Items() {
			rows = append(rows, []string{
				u.ID, u.FirstName + " " + u.LastName, u.Email,
				u.PhoneNumber, fmt.Sprint(u.TotalPurchases),
			})
		}
		table([]string{"ID", "NAME", "EMAIL", "PHONE", "PURCHASES"}, rows)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
