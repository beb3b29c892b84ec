package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Uniqueness is enforced twice: an explicit lookup first, then the UNIQUE
// constraint as a backstop for the race window between check and insert.
// Both paths collapse to [ErrUsernameAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.FindUserByUsername(ctx, user.Username); err == nil {
		log.Warn().Str("username", user.Username).Msg("username already exists")
		return models.User{}, ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrNoUserWasFound) {
		return models.User{}, err
	}

	query, args, err := buildInsertUserQuery(r.db.placeholders(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record with the given username.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByUsernameQuery(r.db.placeholders(), username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args)
}

// FindUserByID retrieves the user record with the given internal id.
// Used by the /me lookup after token verification.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByIDQuery(r.db.placeholders(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args)
}

func (r *userRepository) scanUser(ctx context.Context, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.UserID, &found.Username, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
