// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

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

// clienteRepository is the SQL-backed implementation of [ClienteRepository].
// It owns the "clientes" table and reads (never writes) the "ordenes" table
// for the deletion guard and for embedding ordenes into responses.
type clienteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClienteRepository constructs a [ClienteRepository] backed by the
// provided database connection and logger.
func NewClienteRepository(db *DB, logger *logger.Logger) ClienteRepository {
	logger.Debug().Msg("creating cliente repository")
	return &clienteRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new cliente.
//
// A single combined pre-check covers both unique fields: one SELECT matching
// `id = ? OR email = ?`. Any hit refuses the create with
// [ErrClienteAlreadyExists]; the log line records which field collided.
// The pre-check and the INSERT are not serialized against concurrent
// creates; the UNIQUE constraints act as a backstop and map to the same
// sentinel.
func (r *clienteRepository) Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClienteCollisionQuery(r.db.placeholders(), cliente.ID, cliente.Email)
	if err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var existingID int64
	var existingEmail string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&existingID, &existingEmail)
	switch {
	case err == nil:
		field := "email"
		if existingID == cliente.ID {
			field = "id"
		}
		log.Warn().Int64("id", cliente.ID).Str("field", field).Msg("cliente already exists")
		return models.Cliente{}, ErrClienteAlreadyExists
	case !errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*clienteRepository.Create").Msg("error: collision check failed")
		return models.Cliente{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, err = buildInsertClienteQuery(r.db.placeholders(), cliente)
	if err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Cliente{}, ErrClienteAlreadyExists
		}
		log.Err(err).Str("func", "*clienteRepository.Create").Msg("error: insert failed")
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetByID(ctx, cliente.ID)
}

// GetByID returns the cliente with the given document id together with its
// ordenes, or [ErrClienteNotFound].
func (r *clienteRepository) GetByID(ctx context.Context, id int64) (models.Cliente, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClienteByIDQuery(r.db.placeholders(), id)
	if err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cliente, err := r.scanCliente(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Cliente{}, ErrClienteNotFound
		}
		log.Err(err).Str("func", "*clienteRepository.GetByID").Int64("id", id).Msg("error: scanning cliente")
		return models.Cliente{}, err
	}

	clientes := []models.Cliente{cliente}
	if err := r.attachOrdenes(ctx, clientes); err != nil {
		return models.Cliente{}, err
	}

	return clientes[0], nil
}

// GetAll returns every cliente ordered by document id, ordenes included.
func (r *clienteRepository) GetAll(ctx context.Context) ([]models.Cliente, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllClientesQuery(r.db.placeholders())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clienteRepository.GetAll").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clientes, err := r.scanClientes(rows)
	if err != nil {
		return nil, err
	}

	if err := r.attachOrdenes(ctx, clientes); err != nil {
		return nil, err
	}

	return clientes, nil
}

// Update applies a partial patch to the cliente with the given id.
//
// Behaviour:
//   - Unknown id → [ErrClienteNotFound].
//   - Empty patch → the stored record is returned unchanged (no-op).
//   - Email changed to one held by a DIFFERENT cliente →
//     [ErrEmailAlreadyRegistered]. Re-submitting the cliente's own email is
//     not a conflict.
//   - Otherwise only the supplied fields are written.
func (r *clienteRepository) Update(ctx context.Context, id int64, patch models.ClienteUpdate) (models.Cliente, error) {
	log := logger.FromContext(ctx)

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Cliente{}, err
	}

	if patch.IsEmpty() {
		return existing, nil
	}

	if patch.Email != nil && *patch.Email != existing.Email {
		query, args, err := buildEmailTakenQuery(r.db.placeholders(), id, *patch.Email)
		if err != nil {
			return models.Cliente{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var holderID int64
		err = r.db.QueryRowContext(ctx, query, args...).Scan(&holderID)
		switch {
		case err == nil:
			log.Warn().Int64("id", id).Int64("holder_id", holderID).Msg("email already registered")
			return models.Cliente{}, ErrEmailAlreadyRegistered
		case !errors.Is(err, sql.ErrNoRows):
			log.Err(err).Str("func", "*clienteRepository.Update").Msg("error: email check failed")
			return models.Cliente{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	query, args, err := buildUpdateClienteQuery(r.db.placeholders(), id, patch)
	if err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Cliente{}, ErrEmailAlreadyRegistered
		}
		log.Err(err).Str("func", "*clienteRepository.Update").Msg("error: update failed")
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return patch.Apply(existing), nil
}

// Delete removes the cliente with the given id unless an orden still
// references it. Three-way outcome: [ErrClienteNotFound], blocked with
// [ErrClienteHasOrdenes], or nil after removal.
func (r *clienteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	query, args, err := buildCountOrdenesQuery(r.db.placeholders(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ordenes int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&ordenes); err != nil {
		log.Err(err).Str("func", "*clienteRepository.Delete").Msg("error: counting ordenes")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if ordenes > 0 {
		log.Warn().Int64("id", id).Int("ordenes", ordenes).Msg("delete blocked by ordenes")
		return ErrClienteHasOrdenes
	}

	query, args, err = buildDeleteClienteQuery(r.db.placeholders(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*clienteRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Search returns one page of matches and the total count before pagination.
func (r *clienteRepository) Search(ctx context.Context, params models.SearchParams) ([]models.Cliente, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchCountQuery(r.db.placeholders(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*clienteRepository.Search").Msg("error: counting matches")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	query, args, err = buildSearchClientesQuery(r.db.placeholders(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clienteRepository.Search").Msg("error: executing query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	clientes, err := r.scanClientes(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachOrdenes(ctx, clientes); err != nil {
		return nil, 0, err
	}

	return clientes, total, nil
}

func (r *clienteRepository) scanCliente(row *sql.Row) (models.Cliente, error) {
	var c models.Cliente
	var direccion sql.NullString

	if err := row.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.Contacto, &direccion); err != nil {
		return models.Cliente{}, err
	}

	if direccion.Valid {
		c.Direccion = &direccion.String
	}
	c.Ordenes = []models.Orden{}

	return c, nil
}

func (r *clienteRepository) scanClientes(rows *sql.Rows) ([]models.Cliente, error) {
	clientes := make([]models.Cliente, 0)

	for rows.Next() {
		var c models.Cliente
		var direccion sql.NullString

		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.Contacto, &direccion); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if direccion.Valid {
			c.Direccion = &direccion.String
		}
		c.Ordenes = []models.Orden{}

		clientes = append(clientes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return clientes, nil
}

// attachOrdenes loads the ordenes of all given clientes in one query and
// distributes them onto the slice elements in place.
func (r *clienteRepository) attachOrdenes(ctx context.Context, clientes []models.Cliente) error {
	if len(clientes) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(clientes))
	for _, c := range clientes {
		ids = append(ids, c.ID)
	}

	query, args, err := buildSelectOrdenesQuery(r.db.placeholders(), ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clienteRepository.attachOrdenes").Msg("error: executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	byCliente := make(map[int64][]models.Orden, len(clientes))
	for rows.Next() {
		var o models.Orden
		if err := rows.Scan(&o.Consecutivo, &o.Tipo, &o.IDCliente); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		byCliente[o.IDCliente] = append(byCliente[o.IDCliente], o)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	for i := range clientes {
		if ordenes, ok := byCliente[clientes[i].ID]; ok {
			clientes[i].Ordenes = ordenes
		}
	}

	return nil
}
