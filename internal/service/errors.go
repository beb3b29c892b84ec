package service

import "errors"

var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidUsername         = errors.New("username must be between 3 and 50 characters")
	ErrInvalidPassword         = errors.New("password must be at least 6 characters")
	ErrWrongCredentials        = errors.New("incorrect username or password")
	ErrTokenCreationFailed     = errors.New("error occurred during token creation")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidSearchParams     = errors.New("invalid search parameters")
)
