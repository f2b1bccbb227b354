package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

func TestNotesList_SendsArchivedFilterAndLimit(t *testing.T) {
	var gotQuery map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /notes/", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"archived": r.URL.Query().Get("archived"),
			"limit":    r.URL.Query().Get("limit"),
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{{
			"_id":         "n1",
			"title":       "Idea",
			"content":     "body",
			"user_id":     "u1",
			"tags":        []string{"work"},
			"is_archived": false,
			"created_at":  "2026-08-01T10:00:00+00:00",
			"updated_at":  "2026-08-02T10:00:00+00:00",
		}})
	})

	c, _ := newTestClient(t, mux)

	notes, err := c.Notes().List(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "false", gotQuery["archived"])
	assert.Equal(t, "1000", gotQuery["limit"])

	require.Len(t, notes, 1)
	assert.Equal(t, "n1", notes[0].ID)
	assert.Equal(t, "u1", notes[0].OwnerID)
	assert.Equal(t, []string{"work"}, notes[0].Tags)
	assert.False(t, notes[0].IsArchived)
	assert.True(t, notes[0].UpdatedAt.After(notes[0].CreatedAt))
}

func TestNotesListArchived_TogglesFilter(t *testing.T) {
	var archived string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /notes/", func(w http.ResponseWriter, r *http.Request) {
		archived = r.URL.Query().Get("archived")
		writeJSON(t, w, http.StatusOK, []map[string]any{})
	})

	c, _ := newTestClient(t, mux)
	notes, err := c.Notes().ListArchived(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, "true", archived)
}

func TestNotesSearch_SendsTextAndTags(t *testing.T) {
	var q map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /notes/", func(w http.ResponseWriter, r *http.Request) {
		q = map[string]string{
			"search": r.URL.Query().Get("search"),
			"tags":   r.URL.Query().Get("tags"),
			"limit":  r.URL.Query().Get("limit"),
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{})
	})

	c, _ := newTestClient(t, mux)
	_, err := c.Notes().Search(context.Background(), "u1", store.NoteQuery{
		Text:  "plan",
		Tags:  []string{"A", "b"},
		Limit: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "plan", q["search"])
	assert.Equal(t, "a,b", q["tags"])
	assert.Equal(t, "5", q["limit"])
}

func TestNoteCreate_NormalizesTags(t *testing.T) {
	var body map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("POST /notes/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"_id": "n1", "title": "Idea", "content": "body", "user_id": "u1",
			"tags": []string{"work"}, "is_archived": false,
			"created_at": "2026-08-01T10:00:00Z", "updated_at": "2026-08-01T10:00:00Z",
		})
	})

	c, _ := newTestClient(t, mux)
	n, err := c.Notes().Create(context.Background(), "u1", "Idea", "body", []string{"Work", "work "})
	require.NoError(t, err)
	assert.False(t, n.IsArchived)

	assert.Equal(t, []any{"work"}, body["tags"])
}

func TestNoteUpdate_OmitsUnsetFields(t *testing.T) {
	var raw []byte

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /notes/n1", func(w http.ResponseWriter, r *http.Request) {
		var err error
		raw, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"_id": "n1", "title": "Idea", "content": "new", "user_id": "u1",
			"tags": []string{}, "is_archived": false,
			"created_at": "2026-08-01T10:00:00Z", "updated_at": "2026-08-03T10:00:00Z",
		})
	})

	c, _ := newTestClient(t, mux)

	content := "new"
	_, err := c.Notes().Update(context.Background(), "n1", models.NoteUpdate{Content: &content})
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, map[string]any{"content": "new"}, fields)
}

func TestNoteUpdate_ArchiveFlagUsesServerName(t *testing.T) {
	var fields map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /notes/n1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"_id": "n1", "title": "Idea", "content": "body", "user_id": "u1",
			"tags": []string{}, "is_archived": true,
			"created_at": "2026-08-01T10:00:00Z", "updated_at": "2026-08-03T10:00:00Z",
		})
	})

	c, _ := newTestClient(t, mux)

	archived := true
	n, err := c.Notes().Update(context.Background(), "n1", models.NoteUpdate{IsArchived: &archived})
	require.NoError(t, err)
	assert.True(t, n.IsArchived)
	assert.Equal(t, map[string]any{"is_archived": true}, fields)
}

func TestNoteDelete_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /notes/missing", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Note not found"})
	})

	c, _ := newTestClient(t, mux)
	err := c.Notes().Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNoteRestore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /notes/n1/restore", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"_id": "n1", "title": "Idea", "content": "body", "user_id": "u1",
			"tags": []string{}, "is_archived": false,
			"created_at": "2026-08-01T10:00:00Z", "updated_at": "2026-08-03T10:00:00Z",
		})
	})

	c, _ := newTestClient(t, mux)
	n, err := c.Notes().Restore(context.Background(), "n1")
	require.NoError(t, err)
	assert.False(t, n.IsArchived)
}

func TestNotePermanentDelete_AbsentIDSucceeds(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /notes/gone/permanent", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"detail": "Note not found"})
	})

	c, _ := newTestClient(t, mux)
	assert.NoError(t, c.Notes().PermanentDelete(context.Background(), "gone"))
}

func TestNotesClearArchive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /notes/archive/clear", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"message": "Archive cleared", "deleted_count": 3})
	})

	c, _ := newTestClient(t, mux)
	n, err := c.Notes().ClearArchive(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
