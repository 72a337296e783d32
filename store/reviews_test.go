package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulllah321/ekka-admin-dashboard/client"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// reviewBackend mirrors the server's review route shapes: list and create at
// /reviews, per-product list at /reviews/<productId>, single fetch at
// /reviews/id/<id>, delete at /reviews/<id>. Anything else 404s, so a store
// addressing the wrong shape fails loudly here.
type reviewBackend struct {
	reviews  []models.Review
	requests []string
}

func (b *reviewBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)

	switch {
	case r.URL.Path == "/reviews" && r.Method == http.MethodGet:
		json.NewEncoder(w).Encode(b.reviews)
	case r.URL.Path == "/reviews" && r.Method == http.MethodPost:
		var rev models.Review
		json.NewDecoder(r.Body).Decode(&rev)
		rev.ID = "r-new"
		b.reviews = append(b.reviews, rev)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rev)
	case strings.HasPrefix(r.URL.Path, "/reviews/id/") && r.Method == http.MethodGet:
		id := strings.TrimPrefix(r.URL.Path, "/reviews/id/")
		for _, rev := range b.reviews {
			if rev.ID == id {
				json.NewEncoder(w).Encode(rev)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Review not found"})
	case strings.HasPrefix(r.URL.Path, "/reviews/") && r.Method == http.MethodDelete:
		id := strings.TrimPrefix(r.URL.Path, "/reviews/")
		for i, rev := range b.reviews {
			if rev.ID == id {
				b.reviews = append(b.reviews[:i], b.reviews[i+1:]...)
				json.NewEncoder(w).Encode(map[string]string{"message": "Review deleted successfully"})
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Review not found"})
	case strings.HasPrefix(r.URL.Path, "/reviews/") && r.Method == http.MethodGet:
		productID := strings.TrimPrefix(r.URL.Path, "/reviews/")
		matched := []models.Review{}
		for _, rev := range b.reviews {
			if rev.ProductID == productID {
				matched = append(matched, rev)
			}
		}
		json.NewEncoder(w).Encode(matched)
	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "no route"})
	}
}

func newReviewStore(t *testing.T, backend *reviewBackend) *Reviews {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL, srv.URL+"/")
	require.NoError(t, err)
	return NewReviews(c)
}

func TestReviewsDeleteAddressesPlainItemPath(t *testing.T) {
	backend := &reviewBackend{reviews: []models.Review{
		{ID: "r1", Rating: 4, ProductID: "p1"},
		{ID: "r2", Rating: 2, ProductID: "p1"},
	}}
	reviews := newReviewStore(t, backend)
	require.NoError(t, reviews.LoadAll(context.Background()))

	require.NoError(t, reviews.Delete(context.Background(), "r1"))
	assert.Contains(t, backend.requests, "DELETE /reviews/r1")

	items := reviews.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "r2", items[0].ID)
}

func TestReviewsLoadOneUsesDetailPath(t *testing.T) {
	backend := &reviewBackend{reviews: []models.Review{
		{ID: "r1", Rating: 4, ProductID: "p1", Comment: "solid"},
	}}
	reviews := newReviewStore(t, backend)

	rev, err := reviews.LoadOne(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "solid", rev.Comment)
	assert.Contains(t, backend.requests, "GET /reviews/id/r1")
}

func TestReviewsLoadForProductReplacesList(t *testing.T) {
	backend := &reviewBackend{reviews: []models.Review{
		{ID: "r1", Rating: 4, ProductID: "p1"},
		{ID: "r2", Rating: 2, ProductID: "p2"},
		{ID: "r3", Rating: 5, ProductID: "p1"},
	}}
	reviews := newReviewStore(t, backend)
	require.NoError(t, reviews.LoadAll(context.Background()))
	require.Len(t, reviews.Items(), 3)

	require.NoError(t, reviews.LoadForProduct(context.Background(), "p1"))
	items := reviews.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "r1", items[0].ID)
	assert.Equal(t, "r3", items[1].ID)
}

func TestReviewsCreateAppends(t *testing.T) {
	backend := &reviewBackend{}
	reviews := newReviewStore(t, backend)
	require.NoError(t, reviews.LoadAll(context.Background()))

	created, err := reviews.Create(context.Background(), map[string]any{
		"rating": 5, "productId": "p1", "userId": "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, "r-new", created.ID)
	assert.Contains(t, backend.requests, "POST /reviews")
	require.Len(t, reviews.Items(), 1)
}
