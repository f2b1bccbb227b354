package local

import (
	"context"

	"snapnote/internal/models"
	"snapnote/internal/store"
)

type tagsManager struct {
	s *Store
}

func (m *tagsManager) List(ctx context.Context, ownerID string) ([]models.Tag, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := readCollection[models.Tag](ctx, s.kv, tagsKey)
	if err != nil {
		return nil, err
	}

	var result []models.Tag
	for _, t := range tags {
		if t.OwnerID == ownerID {
			result = append(result, t)
		}
	}
	return result, nil
}

// Create is idempotent by normalized name: asking for a tag that already
// exists returns the stored record instead of duplicating it.
func (m *tagsManager) Create(ctx context.Context, ownerID, name string) (*models.Tag, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	name = models.NormalizeTagName(name)

	tags, err := readCollection[models.Tag](ctx, s.kv, tagsKey)
	if err != nil {
		return nil, err
	}

	for _, t := range tags {
		if t.OwnerID == ownerID && t.Name == name {
			tag := t
			return &tag, nil
		}
	}

	tag := models.Tag{
		ID:        s.newID(),
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: s.now(),
	}
	tags = append(tags, tag)
	if err := writeCollection(ctx, s.kv, tagsKey, tags); err != nil {
		return nil, err
	}
	return &tag, nil
}

// Rename changes the tag name and rewrites it on the owner's notes, which
// reference tags by name.
func (m *tagsManager) Rename(ctx context.Context, tagID, name string) (*models.Tag, error) {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	name = models.NormalizeTagName(name)

	tags, err := readCollection[models.Tag](ctx, s.kv, tagsKey)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tags {
		if tags[i].ID == tagID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, store.ErrNotFound
	}

	oldName := tags[idx].Name
	tags[idx].Name = name
	if err := writeCollection(ctx, s.kv, tagsKey, tags); err != nil {
		return nil, err
	}

	if oldName != name {
		if err := m.rewriteNoteTags(ctx, tags[idx].OwnerID, oldName, name); err != nil {
			return nil, err
		}
	}

	tag := tags[idx]
	return &tag, nil
}

// Delete removes the tag and strips its name from the owner's notes.
// An absent id is a silent no-op.
func (m *tagsManager) Delete(ctx context.Context, tagID string) error {
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := readCollection[models.Tag](ctx, s.kv, tagsKey)
	if err != nil {
		return err
	}

	var deleted *models.Tag
	kept := tags[:0]
	for _, t := range tags {
		if t.ID == tagID {
			d := t
			deleted = &d
			continue
		}
		kept = append(kept, t)
	}
	if deleted == nil {
		return nil
	}
	if err := writeCollection(ctx, s.kv, tagsKey, kept); err != nil {
		return err
	}

	if err := m.rewriteNoteTags(ctx, deleted.OwnerID, deleted.Name, ""); err != nil {
		return err
	}
	s.log.Info(ctx, "tag deleted", "tag", deleted.Name, "owner", deleted.OwnerID)
	return nil
}

// rewriteNoteTags replaces oldName with newName on the owner's notes; an
// empty newName strips the reference. Touched notes get a fresh UpdatedAt.
// Callers must hold s.mu.
func (m *tagsManager) rewriteNoteTags(ctx context.Context, ownerID, oldName, newName string) error {
	s := m.s

	notes, err := readCollection[models.Note](ctx, s.kv, notesKey)
	if err != nil {
		return err
	}

	changed := false
	for i := range notes {
		if notes[i].OwnerID != ownerID || !notes[i].HasTag(oldName) {
			continue
		}
		rewritten := make([]string, 0, len(notes[i].Tags))
		for _, t := range notes[i].Tags {
			switch {
			case t == oldName && newName == "":
				// dropped
			case t == oldName:
				if !contains(rewritten, newName) {
					rewritten = append(rewritten, newName)
				}
			default:
				if !contains(rewritten, t) {
					rewritten = append(rewritten, t)
				}
			}
		}
		notes[i].Tags = rewritten
		notes[i].UpdatedAt = s.now()
		changed = true
	}
	if !changed {
		return nil
	}
	return writeCollection(ctx, s.kv, notesKey, notes)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
