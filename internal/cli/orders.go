package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Inspect orders and advance their status",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		orders := store.NewOrders(c)
		if err := orders.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(orders.Items()))
		for _, o := range orders.Items() {
			customer := ""
			if o.User != nil {
				customer = o.User.FirstName + " " + o.User.LastName
			}
			rows = append(rows, []string{
				o.ID, customer, fmt.Sprintf("%.2f", o.TotalAmount),
				string(o.SelectedPaymentMethod), string(o.Status),
				o.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		table([]string{"ID", "CUSTOMER", "TOTAL", "PAYMENT", "STATUS", "PLACED"}, rows)
		return nil
	},
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		orders := store.NewOrders(c)
		o, err := orders.LoadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Order %s  [%s]  total %.2f via %s\n", o.ID, o.Status, o.TotalAmount, o.SelectedPaymentMethod)
		if o.User != nil {
			fmt.Printf("  customer: %s %s <%s>\n", o.User.FirstName, o.User.LastName, o.User.Email)
		}
		if o.SelectedAddress != nil {
			a := o.SelectedAddress
			fmt.Printf("  ship to: %s, %s, %s %s\n", a.Street, a.City, a.State, a.PostalCode)
		}
		for _, item := range o.OrderItems {
			name := item.ProductID
			if item.Product != nil {
				name = item.Product.Name
			}
			fmt.Printf("  %d x %s @ %.2f\n", item.Quantity, name, item.Price)
		}
		return nil
	},
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Advance an order's status",
	Long:  "Moves the order to the given status. Backward moves and moves out of delivered or cancelled are rejected by the server.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		next := models.OrderStatus(args[1])
		if !models.ValidOrderStatus(next) {
			return fmt.Errorf("unknown status %q", args[1])
		}
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		orders := store.NewOrders(c)
		o, err := orders.UpdateStatus(cmd.Context(), args[0], next)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s is now %s\n", o.ID, o.Status)
		return nil
	},
}

func init() {
	ordersCmd.AddCommand(ordersListCmd, ordersGetCmd, ordersStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}
