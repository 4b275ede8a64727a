package model

// Role determines what a user may do once authenticated
type Role string

const (
	RoleAdmin  Role = "admin"
	RolePlayer Role = "player"
)

// Status gates whether an account may log in at all
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// User is one record in the users document.
// Email is the unique identifier, compared case-sensitively as stored.
type User struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password"` // bcrypt hash, never plaintext
	Status       Status `json:"status"`
	Role         Role   `json:"role"`
}

// IsActive reports whether the account may establish a session
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// Toggled returns the opposite account status
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}
