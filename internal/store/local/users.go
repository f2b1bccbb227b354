package local

import (
	"context"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type usersManager struct {
	s *Store
}

// Register creates a new account. The credential is stored as given: this
// backend lives entirely on the user's own machine and authenticates by
// plain comparison.
func (m *usersManager) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.User](ctx, s.kv, usersKey)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, store.ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:          s.newID(),
		Email:       email,
		Name:        name,
		Password:    password,
		CreatedAt:   s.now(),
		Preferences: models.DefaultPreferences(),
	}

	users = append(users, user)
	if err := writeCollection(ctx, s.kv, usersKey, users); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user", user.ID)
	return &user, nil
}

func (m *usersManager) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.User](ctx, s.kv, usersKey)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrInvalidCredentials
}

func (m *usersManager) UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := readCollection[models.User](ctx, s.kv, usersKey)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Apply(update)
		if err := writeCollection(ctx, s.kv, usersKey, users); err != nil {
			return nil, err
		}
		user := users[i]
		return &user, nil
	}
	return nil, store.ErrNotFound
}
