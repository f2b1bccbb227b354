// Package session holds the current-user snapshot with an explicit
// lifecycle: set on login or registration, cleared on logout or when the
// remote backend reports the credential invalid. The snapshot is persisted
// in the key-value substrate so a restarted process resumes the session.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"snapnote/internal/kvstore"
	"snapnote/internal/logging"
	"snapnote/internal/models"
)

// Key is the substrate key holding the serialized session snapshot.
const Key = "snapnote_current_user"

// Manager owns the session snapshot. Safe for use from multiple goroutines;
// the persisted copy is read once and cached.
type Manager struct {
	kv  kvstore.Store
	log logging.Logger

	mu      sync.Mutex
	current *models.User
	loaded  bool
}

func NewManager(kv kvstore.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{kv: kv, log: log}
}

// Current returns the active user snapshot, or nil when nobody is logged in.
func (m *Manager) Current(ctx context.Context) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		raw, err := m.kv.Get(ctx, Key)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if raw != nil {
			var u models.User
			if err := json.Unmarshal(raw, &u); err != nil {
				// a corrupt snapshot is treated as no session
				m.log.Warn(ctx, "discarding unreadable session snapshot", "error", err)
			} else {
				m.current = &u
			}
		}
		m.loaded = true
	}

	if m.current == nil {
		return nil, nil
	}
	u := *m.current
	return &u, nil
}

// Set stores u as the active session.
func (m *Manager) Set(ctx context.Context, u *models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.kv.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	c := *u
	m.current = &c
	m.loaded = true
	return nil
}

// Clear drops the active session, both cached and persisted.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	m.current = nil
	m.loaded = true
	return nil
}
