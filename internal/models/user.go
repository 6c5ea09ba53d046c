package models

import "strings"

// Role distinguishes which panels a user may see. It is a UI gate, not a security boundary.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Is compares roles case-insensitively.
func (r Role) Is(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

// IsAdmin reports whether the role grants the admin panel.
func (r Role) IsAdmin() bool {
	return r.Is(RoleAdmin)
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
