package store

import (
	"context"
	"net/http"

	"github.com/Abdulllah321/ekka-admin-dashboard/client"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

func NewCategories(c *client.Client) *Store[models.Category] {
	return newStore(c, "/categories", func(v models.Category) string { return v.ID })
}

func NewSubCategories(c *client.Client) *Store[models.SubCategory] {
	return newStore(c, "/subcategories", func(v models.SubCategory) string { return v.ID })
}

// NewProducts returns the product store. LoadOne takes the product slug, as
// the detail endpoint is keyed by slug rather than id.
func NewProducts(c *client.Client) *Store[models.Product] {
	return newStore(c, "/products", func(v models.Product) string { return v.ID })
}

func NewBanners(c *client.Client) *Store[models.Banner] {
	return newStore(c, "/banners", func(v models.Banner) string { return v.ID })
}

func NewCoupons(c *client.Client) *Store[models.Coupon] {
	return newStore(c, "/coupons", func(v models.Coupon) string { return v.ID })
}

// Orders is read-mostly: the console never creates or deletes orders, it only
// advances their status.
type Orders struct {
	*Store[models.Order]
}

func NewOrders(c *client.Client) *Orders {
	s := newStore(c, "/orders", func(v models.Order) string { return v.ID })
	s.updateMethod = http.MethodPatch
	return &Orders{Store: s}
}

// UpdateStatus patches a single order's status and replaces the list entry
// with the server's record.
func (o *Orders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	return o.Update(ctx, id, map[string]models.OrderStatus{"status": status})
}

// Reviews supports the three read shapes the console uses: all reviews, the
// reviews of one product, and a single review by its own id. Only the single
// fetch lives under /reviews/id/; create and delete address /reviews like any
// other resource, and the console never updates a review.
type Reviews struct {
	s *Store[models.Review]
}

func NewReviews(c *client.Client) *Reviews {
	s := newStore(c, "/reviews", func(v models.Review) string { return v.ID })
	s.detailPath = func(id string) string { return "/reviews/id/" + id }
	return &Reviews{s: s}
}

func (r *Reviews) LoadAll(ctx context.Context) error { return r.s.LoadAll(ctx) }

// LoadForProduct replaces the list with the reviews of one product.
func (r *Reviews) LoadForProduct(ctx context.Context, productID string) error {
	return r.s.loadList(ctx, "/reviews/"+productID)
}

func (r *Reviews) LoadOne(ctx context.Context, id string) (models.Review, error) {
	return r.s.LoadOne(ctx, id)
}

func (r *Reviews) Create(ctx context.Context, draft any) (models.Review, error) {
	return r.s.Create(ctx, draft)
}

func (r *Reviews) Delete(ctx context.Context, id string) error { return r.s.Delete(ctx, id) }

func (r *Reviews) Items() []models.Review { return r.s.Items() }
func (r *Reviews) Loading() bool          { return r.s.Loading() }
func (r *Reviews) Err() string            { return r.s.Err() }

// Stores lists vendor profiles; the console never mutates them.
type Stores struct {
	s *Store[models.Store]
}

func NewStores(c *client.Client) *Stores {
	return &Stores{s: newStore(c, "/stores", func(v models.Store) string { return v.ID })}
}

func (v *Stores) LoadAll(ctx context.Context) error { return v.s.LoadAll(ctx) }
func (v *Stores) LoadOne(ctx context.Context, id string) (models.Store, error) {
	return v.s.LoadOne(ctx, id)
}
func (v *Stores) Items() []models.Store { return v.s.Items() }
func (v *Stores) Loading() bool         { return v.s.Loading() }
func (v *Stores) Err() string           { return v.s.Err() }

// Users is the read-only customer listing.
type Users struct {
	s *Store[models.User]
}

func NewUsers(c *client.Client) *Users {
	return &Users{s: newStore(c, "/users/all", func(v models.User) string { return v.ID })}
}

func (u *Users) LoadAll(ctx context.Context) error { return u.s.LoadAll(ctx) }
func (u *Users) Items() []models.User              { return u.s.Items() }
func (u *Users) Loading() bool                     { return u.s.Loading() }
func (u *Users) Err() string                       { return u.s.Err() }
