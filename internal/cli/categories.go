package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var categoryDraft form.CategoryDraft

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage main categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their sub-categories and product counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		categories := store.NewCategories(c)
		if err := categories.LoadAll(cmd.Context()); err != nil {
			return err
		}

		rows := make([][]string, 0)
		for _, cat := range categories.Items() {
			subs := make([]string, 0, len(cat.SubCategories))
			for _, s := range cat.SubCategories {
				subs = append(subs, s.Name)
			}
			products := int64(0)
			if cat.Count != nil {
				products = cat.Count.Products
			}
			rows = append(rows, []string{
				cat.ID, cat.Name, cat.Slug, string(cat.Status),
				fmt.Sprint(products), strings.Join(subs, ", "),
			})
		}
		table([]string{"ID", "NAME", "SLUG", "STATUS", "PRODUCTS", "SUB-CATEGORIES"}, rows)
		return nil
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a category; the slug is derived from the name when omitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		categories := store.NewCategories(c)

		controller := form.NewCreate(form.EmptyCategoryDraft(),
			func(ctx context.Context, d form.CategoryDraft) (models.Category, error) {
				return categories.Create(ctx, d)
			})
		draft := categoryDraft
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
		fmt.Printf("Created category %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		categories := store.NewCategories(c)

		id := args[0]
		controller := form.NewEdit(categoryDraft,
			func(ctx context.Context, d form.CategoryDraft) (models.Category, error) {
				return categories.Update(ctx, id, d)
			})

		updated, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Updated category %s\n", updated.ID)
		return nil
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category and its sub-categories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		categories := store.NewCategories(c)
		if err := categories.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Category deleted.")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{categoriesCreateCmd, categoriesUpdateCmd} {
		cmd.Flags().StringVar(&categoryDraft.Name, "name", "", "category name")
		cmd.Flags().StringVar(&categoryDraft.Slug, "slug", "", "URL slug (derived from name when empty)")
		cmd.Flags().StringVar(&categoryDraft.ShortDesc, "short-desc", "", "short description")
		cmd.Flags().StringVar(&categoryDraft.FullDesc, "full-desc", "", "full description")
		cmd.Flags().StringVar(&categoryDraft.ImageURL, "image", "", "image path returned by upload")
		cmd.Flags().StringVar((*string)(&categoryDraft.Status), "status", "active", "active|inactive")
	}

	categoriesCmd.AddCommand(categoriesListCmd, categoriesCreateCmd, categoriesUpdateCmd, categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
