// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

// Package service contains the business rules sitting between the HTTP
// handlers and the store: credential handling, token issuing and cliente
// input validation.
package service

import (
	"github.com/dfcastellanos/clientes-api/internal/config"
	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/internal/validators"
)

// Services bundles every service behind its interface.
type Services struct {
	AuthService
	ClienteService
}

// NewServices wires the services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, log),
		ClienteService: NewClienteService(storages.ClienteRepository, validators.NewClienteValidator(), log),
	}
}
