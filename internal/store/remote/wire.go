package remote

import (
	"time"

	"snapnote/internal/models"
)

// Wire shapes of the remote API. The server names things differently from
// the local contract: identifiers arrive as "_id" or "id" depending on the
// endpoint, the owner reference is "user_id", and timestamps use snake_case.
// These DTOs absorb all of that so nothing above this package sees it.

type wireUser struct {
	OID       string    `json:"_id"`
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type wireNote struct {
	OID        string    `json:"_id"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OwnerID    string    `json:"user_id"`
	Tags       []string  `json:"tags"`
	IsArchived bool      `json:"is_archived"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type wireTag struct {
	OID       string    `json:"_id"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func firstID(oid, id string) string {
	if oid != "" {
		return oid
	}
	return id
}

func (w *wireUser) toModel() *models.User {
	return &models.User{
		ID:        firstID(w.OID, w.ID),
		Email:     w.Email,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		// the server does not store preferences yet
		Preferences: models.DefaultPreferences(),
	}
}

func (w *wireNote) toModel() *models.Note {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Note{
		ID:         firstID(w.OID, w.ID),
		Title:      w.Title,
		Content:    w.Content,
		OwnerID:    w.OwnerID,
		Tags:       tags,
		IsArchived: w.IsArchived,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func (w *wireTag) toModel() *models.Tag {
	return &models.Tag{
		ID:        firstID(w.OID, w.ID),
		Name:      w.Name,
		OwnerID:   w.OwnerID,
		CreatedAt: w.CreatedAt,
	}
}

func noteModels(ws []wireNote) []models.Note {
	out := make([]models.Note, 0, len(ws))
	for i := range ws {
		out = append(out, *ws[i].toModel())
	}
	return out
}

func tagModels(ws []wireTag) []models.Tag {
	out := make([]models.Tag, 0, len(ws))
	for i := range ws {
		out = append(out, *ws[i].toModel())
	}
	return out
}
