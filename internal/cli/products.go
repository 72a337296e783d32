package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
	"github.com/Abdulllah321/ekka-admin-dashboard/view"
)

var (
	productDraft  form.ProductDraft
	productSearch string
	productSort   string
	productPage   int
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, paginated the way the console grid is",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		products := store.NewProducts(c)
		if err := products.LoadAll(cmd.Context()); err != nil {
			return err
		}

		grid := view.New(view.Fields[models.Product]{
			Name:      func(p models.Product) string { return p.Name },
			Price:     func(p models.Product) float64 { return p.EffectivePrice() },
			CreatedAt: func(p models.Product) time.Time { return p.CreatedAt },
		})
		grid.Search = productSearch
		grid.Sort = view.SortKey(productSort)
		items := products.Items()
		grid.SetPage(productPage, items)
		page := grid.Page(items)

		rows := make([][]string, 0, len(page.Items))
		for _, p := range page.Items {
			rows = append(rows, []string{
				p.ID, p.Name, fmt.Sprintf("%.2f", p.EffectivePrice()),
				fmt.Sprint(p.StockQuantity), string(p.Status),
			})
		}
		table([]string{"ID", "NAME", "PRICE", "STOCK", "STATUS"}, rows)
		fmt.Printf("Page %d/%d (%d products)\n", page.Current, page.TotalPages, page.TotalItems)
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show one product by slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		products := store.NewProducts(c)
		p, err := products.LoadOne(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n  slug: %s\n  price: %.2f (effective %.2f)\n  stock: %d\n  status: %s\n  thumbnail: %s\n",
			p.Name, p.Slug, p.Price, p.EffectivePrice(), p.StockQuantity, p.Status, c.ImageURL(p.Thumbnail))
		return nil
	},
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		products := store.NewProducts(c)

		controller := form.NewCreate(form.EmptyProductDraft(),
			func(ctx context.Context, d form.ProductDraft) (models.Product, error) {
				return products.Create(ctx, d)
			})
		draft := productDraft
		if draft.Status == "" {
			draft.Status = models.StatusActive
		}
		controller.Draft = draft

		created, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Created product %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		products := store.NewProducts(c)

		id := args[0]
		controller := form.NewEdit(productDraft,
			func(ctx context.Context, d form.ProductDraft) (models.Product, error) {
				return products.Update(ctx, id, d)
			})

		updated, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Updated product %s\n", updated.ID)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		products := store.NewProducts(c)
		if err := products.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Product deleted.")
		return nil
	},
}

func init() {
	productsListCmd.Flags().StringVar(&productSearch, "search", "", "filter by name")
	productsListCmd.Flags().StringVar(&productSort, "sort", string(view.SortLatest), "latest|priceLowHigh|priceHighLow")
	productsListCmd.Flags().IntVar(&productPage, "page", 1, "page number")

	for _, cmd := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		cmd.Flags().StringVar(&productDraft.Name, "name", "", "product name")
		cmd.Flags().StringVar(&productDraft.Slug, "slug", "", "URL slug (derived from name when empty)")
		cmd.Flags().StringVar(&productDraft.ShortDesc, "short-desc", "", "short description")
		cmd.Flags().StringVar(&productDraft.Description, "description", "", "full description")
		cmd.Flags().Float64Var(&productDraft.Price, "price", 0, "regular price")
		cmd.Flags().Float64Var(&productDraft.DiscountPrice, "discount-price", 0, "discounted price")
		cmd.Flags().Float64Var(&productDraft.DiscountPercentage, "discount-percentage", 0, "discount percentage")
		cmd.Flags().IntVar(&productDraft.StockQuantity, "stock", 0, "stock quantity")
		cmd.Flags().StringVar((*string)(&productDraft.Status), "status", "active", "active|inactive")
		cmd.Flags().StringSliceVar(&productDraft.Sizes, "sizes", nil, "sizes")
		cmd.Flags().StringSliceVar(&productDraft.Colors, "colors", nil, "colors")
		cmd.Flags().StringSliceVar(&productDraft.Tags, "tags", nil, "tags")
		cmd.Flags().StringSliceVar(&productDraft.Images, "images", nil, "image paths")
		cmd.Flags().StringVar(&productDraft.Thumbnail, "thumbnail", "", "thumbnail path")
		cmd.Flags().StringVar(&productDraft.CategoryID, "category", "", "category id")
		cmd.Flags().StringVar(&productDraft.SubCategoryID, "subcategory", "", "sub-category id")
	}

	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)
	rootCmd.AddCommand(productsCmd)
}
