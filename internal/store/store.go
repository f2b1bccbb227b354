// Package store defines the backend-neutral data-access contract consumed by
// the UI layer: three resource managers (Users, Notes, Tags) and the Store
// facade that bundles them. Two interchangeable implementations exist, the
// remote HTTP adapter in store/remote and the key-value-persisted backend in
// store/local, selected at composition time by configuration.
package store

import (
	"context"

	"snapnote/internal/models"
)

// Users manages accounts and authentication.
type Users interface {
	// Register creates a new account. ErrDuplicateEmail if the email is taken.
	Register(ctx context.Context, name, email, password string) (*models.User, error)

	// Authenticate returns the user matching email and password.
	// ErrInvalidCredentials if no user matches both.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)

	// UpdateProfile merges update over the stored record. ErrNotFound if the
	// id does not exist.
	UpdateProfile(ctx context.Context, userID string, update models.UserUpdate) (*models.User, error)
}

// Notes manages the note lifecycle: Active --Delete--> Archived,
// Archived --Restore--> Active, either --PermanentDelete--> gone.
type Notes interface {
	// List returns the owner's non-archived notes. No ordering contract;
	// callers sort as they see fit.
	List(ctx context.Context, ownerID string) ([]models.Note, error)

	// ListArchived returns the owner's archived notes.
	ListArchived(ctx context.Context, ownerID string) ([]models.Note, error)

	// Search filters the owner's notes by archive state, tag set (AND
	// semantics) and a case-insensitive substring over title and content.
	// Results come newest-updated first.
	Search(ctx context.Context, ownerID string, q NoteQuery) ([]models.Note, error)

	// Get returns a single note by id. ErrNotFound if absent.
	Get(ctx context.Context, noteID string) (*models.Note, error)

	// Create stores a new non-archived note and returns it.
	Create(ctx context.Context, ownerID, title, content string, tags []string) (*models.Note, error)

	// Update merges update over the note and refreshes UpdatedAt regardless
	// of which fields changed. ErrNotFound if absent.
	Update(ctx context.Context, noteID string, update models.NoteUpdate) (*models.Note, error)

	// Delete archives the note (soft delete). ErrNotFound if absent.
	Delete(ctx context.Context, noteID string) error

	// Restore un-archives the note. ErrNotFound if absent.
	Restore(ctx context.Context, noteID string) (*models.Note, error)

	// PermanentDelete erases the note regardless of its archive state.
	// Deleting an absent id succeeds silently.
	PermanentDelete(ctx context.Context, noteID string) error

	// ClearArchive permanently deletes all of the owner's archived notes and
	// reports how many were removed.
	ClearArchive(ctx context.Context, ownerID string) (int, error)
}

// Tags manages note labels. Tag names are lowercased on the way in.
type Tags interface {
	// List returns the owner's tags.
	List(ctx context.Context, ownerID string) ([]models.Tag, error)

	// Create returns the owner's existing tag with the same normalized name,
	// or stores a new one. Never creates a duplicate.
	Create(ctx context.Context, ownerID, name string) (*models.Tag, error)

	// Rename changes the tag's name in place. The remote backend does not
	// support renames and returns ErrTagRenameUnsupported.
	Rename(ctx context.Context, tagID, name string) (*models.Tag, error)

	// Delete removes the tag and strips its name from the owner's notes.
	// Deleting an absent id is a silent no-op.
	Delete(ctx context.Context, tagID string) error
}

// NoteQuery narrows a Search. Zero-value fields do not filter, except
// Archived which always selects one side of the archive split.
type NoteQuery struct {
	Archived bool
	Text     string
	Tags     []string
	Limit    int
}

// Store is the facade handed to UI consumers.
type Store interface {
	Users() Users
	Notes() Notes
	Tags() Tags
	Close() error
}
