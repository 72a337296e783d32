package form

import (
	"time"

	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// CategoryDraft is the editable shape of a category form. A blank slug is
// derived from the name on Normalize.
type CategoryDraft struct {
	Name      string        `json:"name" validate:"required"`
	Slug      string        `json:"slug"`
	ShortDesc string        `json:"shortDesc"`
	FullDesc  string        `json:"fullDesc"`
	ImageURL  string        `json:"imageUrl"`
	Status    models.Status `json:"status" validate:"required"`
}

func (d *CategoryDraft) Normalize() {
	if d.Slug == "" {
		d.Slug = models.Slugify(d.Name)
	}
}

// EmptyCategoryDraft is the reset state after a successful create.
func EmptyCategoryDraft() CategoryDraft {
	return CategoryDraft{Status: models.StatusActive}
}

type SubCategoryDraft struct {
	Name           string        `json:"name" validate:"required"`
	Slug           string        `json:"slug"`
	ImageURL       string        `json:"imageUrl"`
	Status         models.Status `json:"status" validate:"required"`
	MainCategoryID string        `json:"mainCategoryId" validate:"required"`
}

func (d *SubCategoryDraft) Normalize() {
	if d.Slug == "" {
		d.Slug = models.Slugify(d.Name)
	}
}

func EmptySubCategoryDraft() SubCategoryDraft {
	return SubCategoryDraft{Status: models.StatusActive}
}

type ProductDraft struct {
	Name               string        `json:"name" validate:"required"`
	Slug               string        `json:"slug"`
	ShortDesc          string        `json:"shortDesc"`
	Description        string        `json:"description"`
	Price              float64       `json:"price" validate:"required"`
	DiscountPrice      float64       `json:"discountPrice"`
	DiscountPercentage float64       `json:"discountPercentage"`
	StockQuantity      int           `json:"stockQuantity"`
	Status             models.Status `json:"status" validate:"required"`
	Sizes              []string      `json:"sizes"`
	Colors             []string      `json:"colors"`
	Tags               []string      `json:"tags"`
	Images             []string      `json:"images"`
	Thumbnail          string        `json:"thumbnail"`
	CategoryID         string        `json:"categoryId" validate:"required"`
	SubCategoryID      string        `json:"subCategoryId" validate:"required"`
	StoreID            *string       `json:"storeId,omitempty"`
}

func (d *ProductDraft) Normalize() {
	if d.Slug == "" {
		d.Slug = models.Slugify(d.Name)
	}
}

func EmptyProductDraft() ProductDraft {
	return ProductDraft{Status: models.StatusActive}
}

type BannerDraft struct {
	Image      string                 `json:"image" validate:"required"`
	Title      string                 `json:"title" validate:"required"`
	Subtitle   string                 `json:"subtitle"`
	Discount   string                 `json:"discount"`
	ButtonText string                 `json:"buttonText"`
	ButtonURL  string                 `json:"buttonUrl"`
	Animation  models.BannerAnimation `json:"animation" validate:"required"`
}

func EmptyBannerDraft() BannerDraft {
	return BannerDraft{Animation: models.AnimationSlideFromLeft}
}

type CouponDraft struct {
	Code           string              `json:"code" validate:"required"`
	Description    string              `json:"description"`
	DiscountAmount float64             `json:"discountAmount" validate:"required"`
	DiscountType   models.DiscountType `json:"discountType" validate:"required"`
	StartDate      time.Time           `json:"startDate" validate:"required"`
	EndDate        time.Time           `json:"endDate" validate:"required"`
	Status         models.CouponStatus `json:"status" validate:"required"`
}

func EmptyCouponDraft() CouponDraft {
	return CouponDraft{DiscountType: models.DiscountTypePercentage, Status: models.CouponStatusActive}
}

type ReviewDraft struct {
	Rating    int    `json:"rating" validate:"min=0,max=5"`
	Comment   string `json:"comment"`
	ProductID string `json:"productId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}
