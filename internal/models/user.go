// Package models defines the domain entity types shared across the
// application: the shapes consumed by the stores and HTTP handlers, as
// opposed to the raw row shapes returned by the remote gateway.
package models

import "time"

// Role represents a user's permission level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// SocialLinks holds a user's optional external profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// User is a site member. The authenticated principal held by the auth
// store is a distinguished instance of this type.
type User struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar"`
	Bio         string      `json:"bio"`
	Role        Role        `json:"role"`
	SocialLinks SocialLinks `json:"socialLinks"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// IsAdmin returns true if the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is an authenticated session: a bearer token, its owning user
// and an expiry hint. It is exclusively owned by the auth store.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}
