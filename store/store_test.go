package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulllah321/ekka-admin-dashboard/client"
	"github.com/Abdulllah321/ekka-admin-dashboard/models"
)

// couponServer is a minimal in-memory backend for the coupon endpoints.
type couponServer struct {
	mu      sync.Mutex
	coupons []models.Coupon
	nextID  int
	failAll bool
}

func (s *couponServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/coupons", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(s.coupons)
		case http.MethodPost:
			var c models.Coupon
			json.NewDecoder(r.Body).Decode(&c)
			for _, existing := range s.coupons {
				if existing.Code == c.Code {
					w.WriteHeader(http.StatusConflict)
					json.NewEncoder(w).Encode(map[string]string{"error": "Coupon code already exists"})
					return
				}
			}
			s.nextID++
			c.ID = fmt.Sprintf("cp%d", s.nextID)
			s.coupons = append(s.coupons, c)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(c)
		}
	})
	mux.HandleFunc("/coupons/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		id := strings.TrimPrefix(r.URL.Path, "/coupons/")
		if s.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
			return
		}
		idx := -1
		for i, c := range s.coupons {
			if c.ID == id {
				idx = i
			}
		}
		switch r.Method {
		case http.MethodGet:
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Coupon not found"})
				return
			}
			json.NewEncoder(w).Encode(s.coupons[idx])
		case http.MethodPut:
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Coupon not found"})
				return
			}
			var c models.Coupon
			json.NewDecoder(r.Body).Decode(&c)
			c.ID = id
			s.coupons[idx] = c
			json.NewEncoder(w).Encode(c)
		case http.MethodDelete:
			if idx < 0 {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(map[string]string{"error": "Coupon not found"})
				return
			}
			s.coupons = append(s.coupons[:idx], s.coupons[idx+1:]...)
			json.NewEncoder(w).Encode(map[string]string{"message": "Coupon deleted"})
		}
	})
	return mux
}

func newCouponStore(t *testing.T, backend *couponServer) (*Store[models.Coupon], *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	c, err := client.New(srv.URL, srv.URL+"/")
	require.NoError(t, err)
	return NewCoupons(c), srv
}

func TestLoadAllReplacesList(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{
		{ID: "cp1", Code: "WELCOME10"},
		{ID: "cp2", Code: "SUMMER20"},
	}}
	coupons, _ := newCouponStore(t, backend)

	require.NoError(t, coupons.LoadAll(context.Background()))
	assert.Len(t, coupons.Items(), 2)
	assert.False(t, coupons.Loading())
	assert.Empty(t, coupons.Err())
}

func TestLoadAllFailureKeepsPreviousList(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{{ID: "cp1", Code: "WELCOME10"}}}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	err := coupons.LoadAll(context.Background())
	require.Error(t, err)
	assert.Len(t, coupons.Items(), 1, "stale list survives a failed refresh")
	assert.Equal(t, "database unavailable", coupons.Err())
	assert.False(t, coupons.Loading())
}

func TestCreateAppendsServerRecord(t *testing.T) {
	backend := &couponServer{}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	created, err := coupons.Create(context.Background(), map[string]any{
		"code": "FLASH30", "discountAmount": 30, "discountType": "percentage",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "server assigns the id")

	items := coupons.Items()
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}

func TestCreateDuplicateCodeSurfacesServerMessage(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{{ID: "cp1", Code: "WELCOME10"}}}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	_, err := coupons.Create(context.Background(), map[string]any{"code": "WELCOME10"})
	require.Error(t, err)
	assert.Equal(t, "Coupon code already exists", err.Error())
	assert.Equal(t, "Coupon code already exists", coupons.Err())
	assert.Len(t, coupons.Items(), 1, "failed create adds nothing")
}

func TestUpdateReplacesInPlace(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{
		{ID: "cp1", Code: "WELCOME10", DiscountAmount: 10},
		{ID: "cp2", Code: "SUMMER20", DiscountAmount: 20},
		{ID: "cp3", Code: "FLASH30", DiscountAmount: 30},
	}}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	updated, err := coupons.Update(context.Background(), "cp2", map[string]any{
		"code": "SUMMER20", "discountAmount": 30,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(30), updated.DiscountAmount)

	items := coupons.Items()
	require.Len(t, items, 3, "update never changes the list length")
	assert.Equal(t, "cp1", items[0].ID)
	assert.Equal(t, "cp2", items[1].ID)
	assert.Equal(t, float64(30), items[1].DiscountAmount)
	assert.Equal(t, "cp3", items[2].ID)
}

func TestUpdateMissingIDLeavesListAlone(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{{ID: "cp9", Code: "GHOST"}}}
	coupons, _ := newCouponStore(t, backend)
	// list was never loaded, so the updated record has no slot
	updated, err := coupons.Update(context.Background(), "cp9", map[string]any{"code": "GHOST"})
	require.NoError(t, err)
	assert.Equal(t, "cp9", updated.ID)
	assert.Empty(t, coupons.Items())
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{
		{ID: "cp1", Code: "A"}, {ID: "cp2", Code: "B"}, {ID: "cp3", Code: "C"},
	}}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	require.NoError(t, coupons.Delete(context.Background(), "cp2"))
	items := coupons.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "cp1", items[0].ID)
	assert.Equal(t, "cp3", items[1].ID)
}

func TestDeleteFailureKeepsEntry(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{{ID: "cp1", Code: "A"}}}
	coupons, _ := newCouponStore(t, backend)
	require.NoError(t, coupons.LoadAll(context.Background()))

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()

	err := coupons.Delete(context.Background(), "cp1")
	require.Error(t, err)
	assert.Len(t, coupons.Items(), 1)
	assert.Equal(t, "database unavailable", coupons.Err())
}

func TestNewOperationClearsLastError(t *testing.T) {
	backend := &couponServer{}
	coupons, _ := newCouponStore(t, backend)

	backend.mu.Lock()
	backend.failAll = true
	backend.mu.Unlock()
	require.Error(t, coupons.LoadAll(context.Background()))
	assert.NotEmpty(t, coupons.Err())

	backend.mu.Lock()
	backend.failAll = false
	backend.mu.Unlock()
	require.NoError(t, coupons.LoadAll(context.Background()))
	assert.Empty(t, coupons.Err())
}

func TestLoadOneSetsCurrent(t *testing.T) {
	backend := &couponServer{coupons: []models.Coupon{{ID: "cp1", Code: "WELCOME10"}}}
	coupons, _ := newCouponStore(t, backend)

	_, ok := coupons.Current()
	assert.False(t, ok)

	record, err := coupons.LoadOne(context.Background(), "cp1")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", record.Code)

	current, ok := coupons.Current()
	require.True(t, ok)
	assert.Equal(t, "cp1", current.ID)
	assert.Empty(t, coupons.Items(), "LoadOne never merges into the list")
}
