package store

import (
	"context"

	"github.com/dfcastellanos/clientes-api/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns [ErrUsernameAlreadyExists] when the username
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given id or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// ClienteRepository persists clientes and exposes the CRUD and search
// operations of the service.
type ClienteRepository interface {
	// Create persists a new cliente. A single combined uniqueness pre-check
	// covers both the document id and the email; any collision yields
	// [ErrClienteAlreadyExists].
	Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error)

	// GetByID returns the cliente with the given document id, including its
	// ordenes, or [ErrClienteNotFound].
	GetByID(ctx context.Context, id int64) (models.Cliente, error)

	// GetAll returns every cliente, including ordenes.
	GetAll(ctx context.Context) ([]models.Cliente, error)

	// Update applies a partial patch. An empty patch returns the stored
	// record unchanged. Changing the email to one held by another cliente
	// yields [ErrEmailAlreadyRegistered]; an unknown id yields
	// [ErrClienteNotFound].
	Update(ctx context.Context, id int64, patch models.ClienteUpdate) (models.Cliente, error)

	// Delete removes the cliente with the given id. Returns
	// [ErrClienteNotFound] when absent and [ErrClienteHasOrdenes] when at
	// least one orden still references it.
	Delete(ctx context.Context, id int64) error

	// Search returns one page of clientes matching params plus the total
	// number of matches before pagination.
	Search(ctx context.Context, params models.SearchParams) ([]models.Cliente, int, error)
}
