package remote

import (
	"context"
	"net/http"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type usersManager struct {
	c *Client
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name *string `json:"name,omitempty"`
}

// Register signs the account up; the server issues the session cookie with
// its response, so a successful call is also a login.
func (m *usersManager) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var w wireUser
	err := m.c.do(ctx, http.MethodPost, "/auth/signup",
		nil, signupRequest{Name: name, Email: email, Password: password}, &w)
	if err != nil {
		if statusOf(err) == http.StatusBadRequest {
			return nil, store.ErrDuplicateEmail
		}
		return nil, err
	}
	return w.toModel(), nil
}

func (m *usersManager) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var w wireUser
	err := m.c.do(ctx, http.MethodPost, "/auth/login",
		nil, loginRequest{Email: email, Password: password}, &w)
	if err != nil {
		// a login 401 means a bad credential pair, not a lost session
		if isUnauthorized(err) {
			return nil, store.ErrInvalidCredentials
		}
		return nil, err
	}
	return w.toModel(), nil
}

// UpdateProfile changes the profile of the session's user; the server
// identifies the account from the cookie, so userID only disambiguates
// locally. Preference changes are merged into the returned snapshot but not
// persisted server-side; the server has no preference storage yet.
func (m *usersManager) UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	var w wireUser
	err := m.c.do(ctx, http.MethodPut, "/users/profile",
		nil, profileRequest{Name: update.Name}, &w)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return nil, store.ErrNotFound
		}
		return nil, err
	}

	user := w.toModel()
	if update.Preferences != nil {
		user.Preferences = *update.Preferences
	}
	return user, nil
}
