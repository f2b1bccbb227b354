package models

import (
	"strings"
	"time"
)

// Tag is a named label owned by one user. Names are stored lowercased.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// NormalizeTagName lowercases and trims a tag name. Both backends apply it
// before comparing or storing names, which is what makes "Work" and "work"
// resolve to the same tag.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeTagNames normalizes every name in the list, dropping empties and
// duplicates while keeping first-seen order. Note tag references go through
// this before storage so the cascade on tag deletion can match them exactly.
func NormalizeTagNames(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeTagName(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
