package local

import (
	"context"
	"sort"
	"strings"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type notesManager struct {
	s *Store
}

func (m *notesManager) List(ctx context.Context, ownerID string) ([]models.Note, error) {
	return m.listByArchived(ctx, ownerID, false)
}

func (m *notesManager) ListArchived(ctx context.Context, ownerID string) ([]models.Note, error) {
	return m.listByArchived(ctx, ownerID, true)
}

func (m *notesManager) listByArchived(ctx context.Context, ownerID string, archived bool) ([]models.Note, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return nil, err
	}

	var result []models.Note
	for _, n := range notes {
		if n.OwnerID == ownerID && n.IsArchived == archived {
			result = append(result, n)
		}
	}
	return result, nil
}

func (m *notesManager) Search(ctx context.Context, ownerID string, q store.NoteQuery) ([]models.Note, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(q.Text)
	want := models.NormalizeTagNames(q.Tags)

	var result []models.Note
	for _, n := range notes {
		if n.OwnerID != ownerID || n.IsArchived != q.Archived {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(n.Title), text) &&
			!strings.Contains(strings.ToLower(n.Content), text) {
			continue
		}
		matched := true
		for _, w := range want {
			if !n.HasTag(w) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		result = append(result, n)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (m *notesManager) Get(ctx context.Context, noteID string) (*models.Note, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ID == noteID {
			note := n
			return &note, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *notesManager) Create(ctx context.Context, ownerID, title, content string, tags []string) (*models.Note, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return nil, err
	}

	now := s.now()
	note := models.Note{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		Tags:      models.NormalizeTagNames(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// new notes go to the front so a following List surfaces them first
	notes = append([]models.Note{note}, notes...)
	if err := writeCollection(ctx, s.kv, notesKey, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

func (m *notesManager) Update(ctx context.Context, noteID string, update models.NoteUpdate) (*models.Note, error) {
	if update.Tags != nil {
		normalized := models.NormalizeTagNames(*update.Tags)
		update.Tags = &normalized
	}
	return m.mutate(ctx, noteID, func(n *models.Note) {
		n.Apply(update)
	})
}

func (m *notesManager) Delete(ctx context.Context, noteID string) error {
	_, err := m.mutate(ctx, noteID, func(n *models.Note) {
		n.IsArchived = true
	})
	return err
}

func (m *notesManager) Restore(ctx context.Context, noteID string) (*models.Note, error) {
	return m.mutate(ctx, noteID, func(n *models.Note) {
		n.IsArchived = false
	})
}

// mutate applies fn to the note with the given id and refreshes UpdatedAt.
func (m *notesManager) mutate(ctx context.Context, noteID string, fn func(*models.Note)) (*models.Note, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return nil, err
	}

	for i := range notes {
		if notes[i].ID != noteID {
			continue
		}
		fn(&notes[i])
		notes[i].UpdatedAt = s.now()
		if err := writeCollection(ctx, s.kv, notesKey, notes); err != nil {
			return nil, err
		}
		note := notes[i]
		return &note, nil
	}
	return nil, store.ErrNotFound
}

func (m *notesManager) PermanentDelete(ctx context.Context, noteID string) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return err
	}

	kept := notes[:0]
	for _, n := range notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(notes) {
		// already gone, nothing to do
		return nil
	}
	return writeCollection(ctx, s.kv, notesKey, kept)
}

func (m *notesManager) ClearArchive(ctx context.Context, ownerID string) (int, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return 0, err
	}

	kept := notes[:0]
	removed := 0
	for _, n := range notes {
		if n.OwnerID == ownerID && n.IsArchived {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	if removed == 0 {
		return 0, nil
	}
	if err := writeCollection(ctx, s.kv, notesKey, kept); err != nil {
		return 0, err
	}
	s.log.Info(ctx, "archive cleared", "owner", ownerID, "removed", removed)
	return removed, nil
}
