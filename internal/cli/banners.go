package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Abdulllah321/ekka-admin-dashboard/form"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
	"github.com/Abdulllah321/ekka-admin-dashboard/store"
)

var bannerDraft form.BannerDraft

var bannersCmd = &cobra.Command{
	Use:   "banners",
	Short: "Manage homepage banners",
}

var bannersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List banners",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		banners := store.NewBanners(c)
		if err := banners.LoadAll(cmd.Context()); err != nil {
			return err
		}
		rows := make([][]string, 0, len(banners.Items()))
		for _, b := range banners.Items() {
			rows = append(rows, []string{b.ID, b.Title, b.Discount, string(b.Animation), c.ImageURL(b.Image)})
		}
		table([]string{"ID", "TITLE", "DISCOUNT", "ANIMATION", "IMAGE"}, rows)
		return nil
	},
}

var bannersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a banner",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		banners := store.NewBanners(c)

		controller := form.NewCreate(form.EmptyBannerDraft(),
			func(ctx context.Context, d form.BannerDraft) (models.Banner, error) {
				return banners.Create(ctx, d)
			})
		draft := bannerDraft
		if draft.Animation == "" {
			draft.Animation = models.AnimationSlideFromLeft
		}
		controller.Draft = draft

		created, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Created banner %s (%s)\n", created.Title, created.ID)
		return nil
	},
}

var bannersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		banners := store.NewBanners(c)

		id := args[0]
		controller := form.NewEdit(bannerDraft,
			func(ctx context.Context, d form.BannerDraft) (models.Banner, error) {
				return banners.Update(ctx, id, d)
			})

		updated, err := controller.Submit(cmd.Context())
		if err != nil {
			if err == form.ErrInvalidDraft {
				return fieldErrorsError(controller.FieldErrors())
			}
			return err
		}
		fmt.Printf("Updated banner %s\n", updated.ID)
		return nil
	},
}

var bannersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		banners := store.NewBanners(c)
		if err := banners.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Banner deleted.")
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{bannersCreateCmd, bannersUpdateCmd} {
		cmd.Flags().StringVar(&bannerDraft.Image, "image", "", "banner image path")
		cmd.Flags().StringVar(&bannerDraft.Title, "title", "", "title")
		cmd.Flags().StringVar(&bannerDraft.Subtitle, "subtitle", "", "subtitle")
		cmd.Flags().StringVar(&bannerDraft.Discount, "discount", "", "discount label")
		cmd.Flags().StringVar(&bannerDraft.ButtonText, "button-text", "", "call-to-action text")
		cmd.Flags().StringVar(&bannerDraft.ButtonURL, "button-url", "", "call-to-action link")
		cmd.Flags().StringVar((*string)(&bannerDraft.Animation), "animation", "slideFromLeft", "slideFromLeft|slideFromRight")
	}

	bannersCmd.AddCommand(bannersListCmd, bannersCreateCmd, bannersUpdateCmd, bannersDeleteCmd)
	rootCmd.AddCommand(bannersCmd)
}
