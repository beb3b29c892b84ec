// Package seed inserts demo data for manual testing: one admin account and a
// handful of clientes. It is idempotent, records that already exist are left
// alone.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfcastellanos/clientes-api/internal/logger"
	"github.com/dfcastellanos/clientes-api/internal/service"
	"github.com/dfcastellanos/clientes-api/internal/store"
	"github.com/dfcastellanos/clientes-api/models"
)

const (
	demoUsername = "admin"
	demoPassword = "admin123"
)

func demoClientes() []models.Cliente {
	direccion := func(s string) *string { return &s }
	return []models.Cliente{
		{ID: 18008332, Nombre: "Juan", Apellido: "Duran", Email: "judu1@mail.com", Contacto: 3001000000, Direccion: direccion("Av Caracas #123")},
		{ID: 12350011, Nombre: "Diana", Apellido: "Valentina", Email: "diva1@mail.com", Contacto: 3002000000, Direccion: direccion("Av Quito #772")},
		{ID: 22315085, Nombre: "Adam", Apellido: "Santana", Email: "ansa1@mail.com", Contacto: 3003000000},
	}
}

// Apply loads the demo account and clientes through the service layer so the
// records pass the same hashing and validation as API traffic.
func Apply(ctx context.Context, services *service.Services, log *logger.Logger) error {
	if _, err := services.AuthService.RegisterUser(ctx, demoUsername, demoPassword); err != nil {
		if !errors.Is(err, store.ErrUsernameAlreadyExists) {
			return fmt.Errorf("seeding demo user: %w", err)
		}
		log.Debug().Str("username", demoUsername).Msg("demo user already present")
	}

	for _, cliente := range demoClientes() {
		if _, err := services.ClienteService.Create(ctx, cliente); err != nil {
			if errors.Is(err, store.ErrClienteAlreadyExists) {
				log.Debug().Int64("id", cliente.ID).Msg("demo cliente already present")
				continue
			}
			return fmt.Errorf("seeding demo cliente %d: %w", cliente.ID, err)
		}
	}

	log.Info().Msg("demo data seeded")
	return nil
}
