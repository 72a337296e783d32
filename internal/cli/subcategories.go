package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var subCategoryDraft form.SubCategoryDraft

var subCategoriesCmd = &cobra.Command{
	Use:   "subcategories",
	Short: "Manage sub-categories",
}

var subCategoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sub-categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		subs := store.NewSubCategories(c)
		if err := subs.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(subs.Items()))
		for _, s := range subs.Items() {
			parent := s.MainCategoryID
			if s.MainCategory != nil {
				parent = s.MainCategory.Name
			}
			rows = append(rows, []string{s.ID, s.Name, s.Slug, parent, string(s.Status)})
		}
		table([]string{"ID", "NAME", "SLUG", "CATEGORY", "STATUS"}, rows)
		return nil
	},
}

var subCategoriesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a sub-category",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		subs := store.NewSubCategories(c)

		controller := form.NewCreate(form.EmptySubCategoryDraft(),
			func(ctx context.Context, d form.SubCategoryDraft) (models.SubCategory, error) {
				return subs.Create(ctx, d)
			})
		draft := subCategoryDraft
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
		fmt.Printf("Created sub-category %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

var subCategoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a sub-category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		subs := store.NewSubCategories(c)

		id := args[0]
		controller := form.NewEdit(subCategoryDraft,
			func(ctx context.Context, d form.SubCategoryDraft) (models.SubCategory, error) {
				return subs.Update(ctx, id, d)
			})

		updated, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Updated sub-category %s\n", updated.ID)
		return nil
	},
}

var subCategoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sub-category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		subs := store.NewSubCategories(c)
		if err := subs.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Sub-category deleted.")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{subCategoriesCreateCmd, subCategoriesUpdateCmd} {
		cmd.Flags().StringVar(&subCategoryDraft.Name, "name", "", "sub-category name")
		cmd.Flags().StringVar(&subCategoryDraft.Slug, "slug", "", "URL slug (derived from name when empty)")
		cmd.Flags().StringVar(&subCategoryDraft.ImageURL, "image", "", "image path")
		cmd.Flags().StringVar((*string)(&subCategoryDraft.Status), "status", "active", "active|inactive")
		cmd.Flags().StringVar(&subCategoryDraft.MainCategoryID, "category", "", "parent category id")
	}

	subCategoriesCmd.AddCommand(subCategoriesListCmd, subCategoriesCreateCmd, subCategoriesUpdateCmd, subCategoriesDeleteCmd)
	rootCmd.AddCommand(subCategoriesCmd)
}
