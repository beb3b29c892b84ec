package service

import (
	"context"

	"github.com/dfcastellanos/clientes-api/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account after validating the credentials.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the given credentials and returns the matching user.
	// Unknown username and wrong password collapse into the same
	// [ErrWrongCredentials] with comparable timing.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT asserting the given user's identity.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	// Every validation failure collapses to [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserByID returns the account behind a verified token identity.
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

// ClienteService wraps the cliente repository with input validation and
// search parameter normalisation.
type ClienteService interface {
	Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error)
	GetByID(ctx context.Context, id int64) (models.Cliente, error)
	GetAll(ctx context.Context) ([]models.Cliente, error)
	Update(ctx context.Context, id int64, patch models.ClienteUpdate) (models.Cliente, error)
	Delete(ctx context.Context, id int64) error

	// Search validates sort/order/page/limit, translates the page number to
	// an offset, and returns one page of matches plus the total match count
	// before pagination.
	Search(ctx context.Context, query, sort, order string, page, limit int) ([]models.Cliente, int, error)
}
