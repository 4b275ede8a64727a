package model

import "time"

// Session is the identity snapshot captured at login time.
// It is trusted as-is until logout or expiry; it is never re-validated
// against the user collection, so status or role changes made after
// login take effect only on the next login.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Authenticated reports whether the snapshot represents a usable login:
// all identity fields present and the account active at login time.
func (s *Session) Authenticated() bool {
	return s != nil && s.Email != "" && s.Role != "" && s.Status == StatusActive
}

// IsAdmin reports whether the snapshot carries the admin role
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
