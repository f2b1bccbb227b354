package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type notesManager struct {
	c *Client
}

type noteCreateRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// noteUpdateRequest mirrors NoteUpdate in the server's field naming. Nil
// fields stay out of the body so the server leaves them untouched.
type noteUpdateRequest struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsArchived *bool     `json:"is_archived,omitempty"`
}

type clearArchiveResponse struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count"`
}

func (m *notesManager) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	return m.list(ctx, store.NoteQuery{Limit: listLimit})
}

func (m *notesManager) ListArchived(ctx context.Context, ownerID string) ([]models.Note, error) {
	return m.list(ctx, store.NoteQuery{Archived: true, Limit: listLimit})
}

func (m *notesManager) Search(ctx context.Context, ownerID string, q store.NoteQuery) ([]models.Note, error) {
	if q.Limit <= 0 {
		q.Limit = listLimit
	}
	return m.list(ctx, q)
}

// list translates a query to the server's parameter set. The owner is
// implied by the session cookie; the server never lists across users.
func (m *notesManager) list(ctx context.Context, q store.NoteQuery) ([]models.Note, error) {
	query := url.Values{}
	query.Set("archived", strconv.FormatBool(q.Archived))
	query.Set("limit", strconv.Itoa(q.Limit))
	if q.Text != "" {
		query.Set("search", q.Text)
	}
	if len(q.Tags) > 0 {
		query.Set("tags", strings.Join(models.NormalizeTagNames(q.Tags), ","))
	}

	var ws []wireNote
	if err := m.c.do(ctx, http.MethodGet, "/notes/", query, nil, &ws); err != nil {
		return nil, err
	}
	return noteModels(ws), nil
}

func (m *notesManager) Get(ctx context.Context, noteID string) (*models.Note, error) {
	var w wireNote
	err := m.c.do(ctx, http.MethodGet, "/notes/"+noteID, nil, nil, &w)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return w.toModel(), nil
}

func (m *notesManager) Create(ctx context.Context, ownerID, title, content string, tags []string) (*models.Note, error) {
	var w wireNote
	err := m.c.do(ctx, http.MethodPost, "/notes/", nil, noteCreateRequest{
		Title:   title,
		Content: content,
		Tags:    models.NormalizeTagNames(tags),
	}, &w)
	if err != nil {
		return nil, err
	}
	return w.toModel(), nil
}

func (m *notesManager) Update(ctx context.Context, noteID string, update models.NoteUpdate) (*models.Note, error) {
	body := noteUpdateRequest{
		Title:      update.Title,
		Content:    update.Content,
		IsArchived: update.IsArchived,
	}
	if update.Tags != nil {
		normalized := models.NormalizeTagNames(*update.Tags)
		body.Tags = &normalized
	}

	var w wireNote
	err := m.c.do(ctx, http.MethodPut, "/notes/"+noteID, nil, body, &w)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return w.toModel(), nil
}

func (m *notesManager) Delete(ctx context.Context, noteID string) error {
	err := m.c.do(ctx, http.MethodDelete, "/notes/"+noteID, nil, nil, nil)
	return mapNotFound(err)
}

func (m *notesManager) Restore(ctx context.Context, noteID string) (*models.Note, error) {
	var w wireNote
	err := m.c.do(ctx, http.MethodPost, "/notes/"+noteID+"/restore", nil, nil, &w)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return w.toModel(), nil
}

// PermanentDelete erases the note. The server answers 404 for an unknown id;
// that is treated as success so the operation stays idempotent like the
// local backend's.
func (m *notesManager) PermanentDelete(ctx context.Context, noteID string) error {
	err := m.c.do(ctx, http.MethodDelete, "/notes/"+noteID+"/permanent", nil, nil, nil)
	if statusOf(err) == http.StatusNotFound {
		return nil
	}
	return err
}

func (m *notesManager) ClearArchive(ctx context.Context, ownerID string) (int, error) {
	var resp clearArchiveResponse
	if err := m.c.do(ctx, http.MethodDelete, "/notes/archive/clear", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.DeletedCount, nil
}

func mapNotFound(err error) error {
	if statusOf(err) == http.StatusNotFound {
		return store.ErrNotFound
	}
	return err
}
