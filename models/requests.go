package models

// RegisterRequest carries the credentials for creating a new account.
type RegisterRequest struct {
	// Username is the desired unique login, 3 to 50 characters.
	Username string `json:"username"`

	// Password is the plaintext password, at least 6 characters.
	// It is hashed before it ever reaches the store.
	Password string `json:"password"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
