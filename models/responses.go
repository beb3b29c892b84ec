package models

// UserResponse is the public projection of a User. Only the username is
// ever exposed; identifiers and credential material stay server-side.
type UserResponse struct {
	Username string `json:"username"`
}

// TokenResponse is the body returned by a successful login: a signed
// bearer token and its type, following the OAuth2 password-flow shape.
type TokenResponse struct {
	// AccessToken is the compact JWS serialization of the issued token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}
