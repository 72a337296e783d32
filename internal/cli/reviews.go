package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var (
	reviewDraft   form.ReviewDraft
	reviewProduct string
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Moderate product reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews, optionally for one product",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		reviews := store.NewReviews(c)
		if reviewProduct != "" {
			err = reviews.LoadForProduct(cmd.Context(), reviewProduct)
		} else {
			err = reviews.LoadAll(cmd.Context())
		}
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(reviews.Items()))
		for _, r := range reviews.Items() {
			product := r.ProductID
			if r.Product != nil {
				product = r.Product.Name
			}
			rows = append(rows, []string{r.ID, product, fmt.Sprint(r.Rating), r.Comment})
		}
		table([]string{"ID", "PRODUCT", "RATING", "COMMENT"}, rows)
		return nil
	},
}

var reviewsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a review",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		reviews := store.NewReviews(c)

		controller := form.NewCreate(form.ReviewDraft{},
			func(ctx context.Context, d form.ReviewDraft) (models.Review, error) {
				return reviews.Create(ctx, d)
			})
		controller.Draft = reviewDraft

		created, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Created review %s\n", created.ID)
		return nil
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		reviews := store.NewReviews(c)
		if err := reviews.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Review deleted.")
		return nil
	},
}

func init() {
	reviewsListCmd.Flags().StringVar(&reviewProduct, "product", "", "limit to one product id")

	reviewsCreateCmd.Flags().IntVar(&reviewDraft.Rating, "rating", 0, "rating 0-5")
	reviewsCreateCmd.Flags().StringVar(&reviewDraft.Comment, "comment", "", "review text")
	reviewsCreateCmd.Flags().StringVar(&reviewDraft.ProductID, "product", "", "product id")
	reviewsCreateCmd.Flags().StringVar(&reviewDraft.UserID, "user", "", "user id")

	reviewsCmd.AddCommand(reviewsListCmd, reviewsCreateCmd, reviewsDeleteCmd)
	rootCmd.AddCommand(reviewsCmd)
}
