package remote

import (
	"context"
	"net/http"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type tagsManager struct {
	c *Client
}

type tagCreateRequest struct {
	Name string `json:"name"`
}

func (m *tagsManager) List(ctx context.Context, ownerID string) ([]models.Tag, error) {
	var ws []wireTag
	if err := m.c.do(ctx, http.MethodGet, "/tags/", nil, nil, &ws); err != nil {
		return nil, err
	}
	return tagModels(ws), nil
}

// Create is idempotent by normalized name. The server rejects a duplicate
// with a conflict instead of returning the existing record, so that case is
// resolved with a follow-up list lookup.
func (m *tagsManager) Create(ctx context.Context, ownerID, name string) (*models.Tag, error) {
	name = models.NormalizeTagName(name)

	var w wireTag
	err := m.c.do(ctx, http.MethodPost, "/tags/", nil, tagCreateRequest{Name: name}, &w)
	if err == nil {
		return w.toModel(), nil
	}
	if statusOf(err) != http.StatusBadRequest {
		return nil, err
	}

	existing, listErr := m.List(ctx, ownerID)
	if listErr != nil {
		return nil, listErr
	}
	for i := range existing {
		if existing[i].Name == name {
			return &existing[i], nil
		}
	}
	return nil, err
}

// Rename is not part of the server's endpoint set. The gap is surfaced
// loudly rather than echoed back as a fake success.
func (m *tagsManager) Rename(ctx context.Context, tagID, name string) (*models.Tag, error) {
	return nil, store.ErrTagRenameUnsupported
}

// Delete removes the tag; the server strips its name from the owner's notes.
// An unknown id answers 404, which is treated as the same silent no-op the
// local backend performs.
func (m *tagsManager) Delete(ctx context.Context, tagID string) error {
	err := m.c.do(ctx, http.MethodDelete, "/tags/"+tagID, nil, nil, nil)
	if statusOf(err) == http.StatusNotFound {
		return nil
	}
	return err
}
