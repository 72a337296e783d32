package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageURL(t *testing.T) {
	c, err := New("http://localhost:8080", "http://localhost:8080/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/uploads/1712000000-shoe.jpg",
		c.ImageURL("uploads/1712000000-shoe.jpg"))
	assert.Equal(t, "https://cdn.example.com/shoe.jpg",
		c.ImageURL("https://cdn.example.com/shoe.jpg"))
	assert.Equal(t, "", c.ImageURL(""))
}

func TestDecodeErrorPrefersErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Slug already in use"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, srv.URL+"/")
	require.NoError(t, err)

	err = c.Get(context.Background(), "/categories", nil)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Slug already in use", apiErr.Message)
}

func TestDecodeErrorFallsBackToMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, srv.URL+"/")
	require.NoError(t, err)

	err = c.Get(context.Background(), "/auth/admin/check", nil)
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestDecodeErrorGenericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL, srv.URL+"/")
	require.NoError(t, err)

	err = c.Get(context.Background(), "/products", nil)
	require.Error(t, err)
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestSessionCookiePersistsAcrossCalls(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "session-jwt", Path: "/", HttpOnly: true})
		json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"id": "a1", "username": "admin"}})
	})
	mux.HandleFunc("/auth/admin/check", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil || cookie.Value != "session-jwt" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"authenticated": true})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL, srv.URL+"/")
	require.NoError(t, err)

	require.Error(t, c.Check(context.Background()), "no session yet")

	user, err := c.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	assert.NoError(t, c.Check(context.Background()), "cookie from login is replayed")
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/", srv.URL+"/")
	require.NoError(t, err)

	var out []any
	require.NoError(t, c.Get(context.Background(), "/categories", &out))
}
