// Package store holds the canonical in-memory list for each resource and
// mediates every remote mutation against the backend. View code never touches
// a list directly; it goes through the lifecycle operations here.
package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/Abdulllah321/ekka-admin-dashboard/client"
)

// Store is the single source of truth for one resource's list, plus its
// loading flag and last error. All methods hold the store mutex while
// applying results, so a late response can be stale but never corrupts the
// list; there is no request fencing beyond that, the last completed
// operation wins.
type Store[T any] struct {
	mu     sync.Mutex
	client *client.Client
	path   string
	id     func(T) string
	// detailPath is the LoadOne route only; reviews fetch a single record
	// from a different shape than their mutations. Update and Delete always
	// address path/<id>.
	detailPath func(id string) string
	// orders patch their updates; everything else uses PUT
	updateMethod string

	items   []T
	current *T
	loading bool
	lastErr string
}

func newStore[T any](c *client.Client, path string, id func(T) string) *Store[T] {
	s := &Store[T]{
		client:       c,
		path:         path,
		id:           id,
		updateMethod: http.MethodPut,
	}
	s.detailPath = s.itemPath
	return s
}

func (s *Store[T]) itemPath(id string) string {
	return s.path + "/" + id
}

// LoadAll replaces the whole canonical list with the server response. On
// failure the previous list is left untouched and the error is recorded.
func (s *Store[T]) LoadAll(ctx context.Context) error {
	return s.loadList(ctx, s.path)
}

func (s *Store[T]) loadList(ctx context.Context, path string) error {
	s.setLoading()

	var fetched []T
	err := s.client.Get(ctx, path, &fetched)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.items = fetched
	return nil
}

// LoadOne fetches a single record into the current/selected slot. It is not
// merged into the list.
func (s *Store[T]) LoadOne(ctx context.Context, id string) (T, error) {
	s.setLoading()

	var record T
	err := s.client.Get(ctx, s.detailPath(id), &record)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return record, err
	}
	s.current = &record
	return record, nil
}

// Create posts a validated draft and appends the server's canonical record
// (with its assigned id) to the end of the list.
func (s *Store[T]) Create(ctx context.Context, draft any) (T, error) {
	s.setLoading()

	var created T
	err := s.client.Post(ctx, s.path, draft, &created)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return created, err
	}
	s.items = append(s.items, created)
	return created, nil
}

// Update sends the patch and replaces the matching list entry with the
// server's record. An id that is no longer in the list is a silent no-op on
// the list; the record is still returned.
func (s *Store[T]) Update(ctx context.Context, id string, patch any) (T, error) {
	s.setLoading()

	var updated T
	var err error
	if s.updateMethod == http.MethodPatch {
		err = s.client.Patch(ctx, s.itemPath(id), patch, &updated)
	} else {
		err = s.client.Put(ctx, s.itemPath(id), patch, &updated)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return updated, err
	}
	for i := range s.items {
		if s.id(s.items[i]) == s.id(updated) {
			s.items[i] = updated
			break
		}
	}
	return updated, nil
}

// Delete removes the record server-side and filters it out of the list. On
// failure the entry stays and the error is recorded.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	s.setLoading()

	err := s.client.Delete(ctx, s.itemPath(id))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	kept := s.items[:0:0]
	for _, item := range s.items {
		if s.id(item) != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// Items returns a copy of the canonical list.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Current returns the record loaded by LoadOne, if any.
func (s *Store[T]) Current() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		var zero T
		return zero, false
	}
	return *s.current, true
}

func (s *Store[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the message from the last failed operation, cleared when a new
// operation starts.
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store[T]) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}
