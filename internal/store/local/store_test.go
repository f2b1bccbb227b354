package local

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"snapnote/internal/kvstore"
	"snapnote/internal/logging"
	"snapnote/internal/models"
)

// fakeClock hands out strictly increasing timestamps so tests can assert on
// UpdatedAt ordering without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	seq := 0
	return New(kvstore.NewMemory(), logging.Nop(),
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func mustRegister(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.Users().Register(context.Background(), "Test User", email, "secret")
	require.NoError(t, err)
	return u
}

func mustCreateNote(t *testing.T, s *Store, ownerID, title string, tags []string) *models.Note {
	t.Helper()
	n, err := s.Notes().Create(context.Background(), ownerID, title, title+" body", tags)
	require.NoError(t, err)
	return n
}
