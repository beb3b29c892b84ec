package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrClienteAlreadyExists is returned when the combined uniqueness check
	// on cliente creation finds an existing record with the same document id
	// or the same email.
	ErrClienteAlreadyExists = errors.New("cliente with that id or email already exists")

	// ErrClienteNotFound is returned when an operation targets a cliente
	// whose document id does not exist in the database.
	ErrClienteNotFound = errors.New("cliente not found")

	// ErrEmailAlreadyRegistered is returned by Update when the patch changes
	// the email to one already held by a different cliente. Distinct from
	// ErrClienteAlreadyExists so the HTTP layer can answer 400 instead of 409.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrClienteHasOrdenes is returned by Delete when at least one orden
	// still references the cliente. The delete is refused, never cascaded.
	ErrClienteHasOrdenes = errors.New("cliente has associated ordenes")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
