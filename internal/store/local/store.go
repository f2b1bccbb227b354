// Package local implements the data-access contract on top of the durable
// key-value substrate. Each collection lives under one fixed key as a JSON
// array and every operation is a whole-collection read-modify-write; a
// store-wide mutex serializes those cycles so overlapping calls cannot
// clobber each other (the tag-delete cascade spans two collections, which is
// why the lock is not per-collection).
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"snapnote/internal/kvstore"
	"snapnote/internal/logging"
	"snapnote/internal/store"
)

// Substrate keys, one per collection. The session snapshot has its own key
// owned by the session package.
const (
	usersKey = "snapnote_users"
	notesKey = "snapnote_notes"
	tagsKey  = "snapnote_tags"
)

// Store is the local backend facade.
type Store struct {
	kv  kvstore.Store
	log logging.Logger

	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// Option customizes a Store. Used by tests to pin the clock and identifiers.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the identifier source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New returns a Store over the given substrate. The substrate's lifecycle
// stays with the caller; Close does not close it.
func New(kv kvstore.Store, log logging.Logger, opts ...Option) *Store {
	if log == nil {
		log = logging.Nop()
	}
	s := &Store{
		kv:    kv,
		log:   log.With("backend", "local"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Users() store.Users { return &usersManager{s} }
func (s *Store) Notes() store.Notes { return &notesManager{s} }
func (s *Store) Tags() store.Tags   { return &tagsManager{s} }

// Close is a no-op: the substrate is shared with the session manager and
// closed by whoever opened it.
func (s *Store) Close() error { return nil }

// readCollection loads and decodes the collection under key. An absent key
// decodes to an empty collection.
func readCollection[T any](ctx context.Context, kv kvstore.Store, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return items, nil
}

// writeCollection serializes and stores the whole collection under key.
func writeCollection[T any](ctx context.Context, kv kvstore.Store, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
