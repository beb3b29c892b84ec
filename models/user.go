package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier, 3 to 50 characters.
	// Used during authentication and embedded in the /me response.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON and is used only for authentication.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
