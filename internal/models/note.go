package models

import "time"

// Note is a freeform markdown-renderable note owned by exactly one user.
// Tags holds tag names, not identifiers: names stay meaningful when the
// backing store changes, identifiers do not.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OwnerID    string    `json:"ownerId"`
	Tags       []string  `json:"tags"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NoteUpdate carries the mutable note fields. Nil fields are left untouched
// by Apply; a non-nil Tags pointer replaces the whole tag list.
type NoteUpdate struct {
	Title      *string   `json:"title,omitempty"`
	Content    *string   `json:"content,omitempty"`
	Tags       *[]string `json:"tags,omitempty"`
	IsArchived *bool     `json:"isArchived,omitempty"`
}

// Apply merges the update into the note in place. It does not touch
// UpdatedAt; refreshing the timestamp is the storage layer's job.
func (n *Note) Apply(upd NoteUpdate) {
	if upd.Title != nil {
		n.Title = *upd.Title
	}
	if upd.Content != nil {
		n.Content = *upd.Content
	}
	if upd.Tags != nil {
		n.Tags = append([]string(nil), (*upd.Tags)...)
	}
	if upd.IsArchived != nil {
		n.IsArchived = *upd.IsArchived
	}
}

// HasTag reports whether the note references the given tag name.
func (n *Note) HasTag(name string) bool {
	for _, t := range n.Tags {
		if t == name {
			return true
		}
	}
	return false
}
