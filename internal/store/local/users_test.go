package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

func TestRegister_AssignsDefaults(t *testing.T) {
	s := newTestStore(t)

	u, err := s.Users().Register(context.Background(), "Alice", "a@x.com", "pw")
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, models.ThemeDark, u.Preferences.Theme)
	assert.False(t, u.CreatedAt.IsZero())
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	mustRegister(t, s, "a@x.com")

	_, err := s.Users().Register(ctx, "Other", "a@x.com", "pw2")
	assert.ErrorIs(t, err, store.ErrDuplicateEmail)

	// the failed attempt must not have stored anything
	u, err := s.Users().Authenticate(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Test User", u.Name)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	reg := mustRegister(t, s, "a@x.com")

	u, err := s.Users().Authenticate(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)

	_, err = s.Users().Authenticate(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)

	_, err = s.Users().Authenticate(ctx, "nobody@x.com", "secret")
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	reg := mustRegister(t, s, "a@x.com")

	name := "Renamed"
	u, err := s.Users().UpdateProfile(ctx, reg.ID, models.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, models.ThemeDark, u.Preferences.Theme)

	prefs := models.Preferences{Theme: models.ThemeLight}
	u, err = s.Users().UpdateProfile(ctx, reg.ID, models.UserUpdate{Preferences: &prefs})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)
	assert.Equal(t, models.ThemeLight, u.Preferences.Theme)

	// persisted, not just echoed
	again, err := s.Users().Authenticate(ctx, "a@x.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", again.Name)
	assert.Equal(t, models.ThemeLight, again.Preferences.Theme)
}

func TestUpdateProfile_NotFound(t *testing.T) {
	s := newTestStore(t)

	name := "x"
	_, err := s.Users().UpdateProfile(context.Background(), "missing", models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
