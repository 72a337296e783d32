package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var (
	couponDraft     form.CouponDraft
	couponStartDate string
	couponEndDate   string
)

var couponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Manage discount coupons",
}

var couponsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coupons",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		coupons := store.NewCoupons(c)
		if err := coupons.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(coupons.Items()))
		for _, cp := range coupons.Items() {
			rows = append(rows, []string{
				cp.ID, cp.Code, fmt.Sprintf("%.2f", cp.DiscountAmount),
				string(cp.DiscountType), string(cp.Status),
				cp.EndDate.Format("2006-01-02"),
			})
		}
		table([]string{"ID", "CODE", "AMOUNT", "TYPE", "STATUS", "ENDS"}, rows)
		return nil
	},
}

func parseCouponDates() error {
	if couponStartDate != "" {
		t, err := time.Parse("2006-01-02", couponStartDate)
		if err != nil {
			return fmt.Errorf("invalid --start-date: %w", err)
		}
		couponDraft.StartDate = t
	}
	if couponEndDate != "" {
		t, err := time.Parse("2006-01-02", couponEndDate)
		if err != nil {
			return fmt.Errorf("invalid --end-date: %w", err)
		}
		couponDraft.EndDate = t
	}
	return nil
}

var couponsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a coupon",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := parseCouponDates(); err != nil {
			return err
		}
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		coupons := store.NewCoupons(c)

		controller := form.NewCreate(form.EmptyCouponDraft(),
			func(ctx context.Context, d form.CouponDraft) (models.Coupon, error) {
				return coupons.Create(ctx, d)
			})
		draft := couponDraft
		if draft.DiscountType == "" {
			draft.DiscountType = models.DiscountTypePercentage
		}
		if draft.Status == "" {
			draft.Status = models.CouponStatusActive
		}
		controller.Draft = draft

		created, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Created coupon %s (%s)\n", created.Code, created.ID)
		return nil
	},
}

var couponsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := parseCouponDates(); err != nil {
			return err
		}
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		coupons := store.NewCoupons(c)

		id := args[0]
		controller := form.NewEdit(couponDraft,
			func(ctx context.Context, d form.CouponDraft) (models.Coupon, error) {
				return coupons.Update(ctx, id, d)
			})

		updated, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Updated coupon %s\n", updated.ID)
		return nil
	},
}

var couponsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a coupon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		coupons := store.NewCoupons(c)
		if err := coupons.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Coupon deleted.")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{couponsCreateCmd, couponsUpdateCmd} {
		cmd.Flags().StringVar(&couponDraft.Code, "code", "", "coupon code")
		cmd.Flags().StringVar(&couponDraft.Description, "description", "", "description")
		cmd.Flags().Float64Var(&couponDraft.DiscountAmount, "amount", 0, "discount amount")
		cmd.Flags().StringVar((*string)(&couponDraft.DiscountType), "type", "percentage", "percentage|fixedAmount")
		cmd.Flags().StringVar(&couponStartDate, "start-date", "", "start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&couponEndDate, "end-date", "", "end date (YYYY-MM-DD)")
		cmd.Flags().StringVar((*string)(&couponDraft.Status), "status", "active", "active|inactive|expired")
	}

	couponsCmd.AddCommand(couponsListCmd, couponsCreateCmd, couponsUpdateCmd, couponsDeleteCmd)
	rootCmd.AddCommand(couponsCmd)
}
