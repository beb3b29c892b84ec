package service

import (
	"context"
	"fmt"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/internal/validators"
	"github.com/dfcastellanos/clientes-api/models"
)

const (
	defaultSearchSort  = "apellido"
	defaultSearchOrder = "asc"
	minSearchLimit     = 1
	maxSearchLimit     = 100
)

type clienteService struct {
	clientes  store.ClienteRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewClienteService returns a [ClienteService] backed by the given repository.
func NewClienteService(clientes store.ClienteRepository, validator validators.Validator, log *logger.Logger) ClienteService {
	return &clienteService{
		clientes:  clientes,
		validator: validator,
		logger:    log.GetChildLogger(),
	}
}

func (s *clienteService) Create(ctx context.Context, cliente models.Cliente) (models.Cliente, error) {
	if err := s.validator.Validate(ctx, cliente); err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.clientes.Create(ctx, cliente)
}

func (s *clienteService) GetByID(ctx context.Context, id int64) (models.Cliente, error) {
	return s.clientes.GetByID(ctx, id)
}

func (s *clienteService) GetAll(ctx context.Context) ([]models.Cliente, error) {
	return s.clientes.GetAll(ctx)
}

func (s *clienteService) Update(ctx context.Context, id int64, patch models.ClienteUpdate) (models.Cliente, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.Cliente{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return s.clientes.Update(ctx, id, patch)
}

func (s *clienteService) Delete(ctx context.Context, id int64) error {
	return s.clientes.Delete(ctx, id)
}

func (s *clienteService) Search(ctx context.Context, query, sort, order string, page, limit int) ([]models.Cliente, int, error) {
	if sort == "" {
		sort = defaultSearchSort
	}
	if order == "" {
		order = defaultSearchOrder
	}
	if sort != "nombre" && sort != "apellido" {
		return nil, 0, fmt.Errorf("%w: sort must be nombre or apellido", ErrInvalidSearchParams)
	}
	if order != "asc" && order != "desc" {
		return nil, 0, fmt.Errorf("%w: order must be asc or desc", ErrInvalidSearchParams)
	}
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be >= 1", ErrInvalidSearchParams)
	}
	if limit < minSearchLimit || limit > maxSearchLimit {
		return nil, 0, fmt.Errorf("%w: limit must be between %d and %d", ErrInvalidSearchParams, minSearchLimit, maxSearchLimit)
	}

	return s.clientes.Search(ctx, models.SearchParams{
		Query:  query,
		Sort:   sort,
		Order:  order,
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
}
