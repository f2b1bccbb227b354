// Package models defines the domain records shared by both storage backends:
// users, notes, tags and the partial-update carriers used by the profile and
// note update operations.
package models

import "time"

// Theme values accepted in user preferences.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preferences is the per-user preference bag. Currently only the UI theme.
type Preferences struct {
	Theme string `json:"theme"`
}

// DefaultPreferences returns the preferences assigned at registration.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeDark}
}

// User is a registered account. Password is only populated by the local
// backend, which stores the credential as given; the remote backend never
// sees or returns credential material.
type User struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Password    string      `json:"password,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	Preferences Preferences `json:"preferences"`
}

// UserUpdate carries the profile fields that may change. Nil fields are
// left untouched by Apply.
type UserUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Apply merges the update into the user in place.
func (u *User) Apply(upd UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Preferences != nil {
		u.Preferences = *upd.Preferences
	}
}
