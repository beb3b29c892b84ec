// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dfcastellanos/clientes-api/models"
)

func validCliente() models.Cliente {
	return models.Cliente{
		ID:       18008332,
		Nombre:   "Juan",
		Apellido: "Duran",
		Email:    "judu1@mail.com",
		Contacto: 3001000000,
	}
}

func TestClienteValidator_ValidCliente(t *testing.T) {
	v := NewClienteValidator()
	require.NoError(t, v.Validate(context.Background(), validCliente()))
}

func TestClienteValidator_Cliente(t *testing.T) {
	longName := strings.Repeat("a", 101)
	longDireccion := strings.Repeat("x", 256)

	tests := []struct {
		name    string
		mutate  func(c *models.Cliente)
		wantErr error
	}{
		{"id below six digits", func(c *models.Cliente) { c.ID = 99999 }, ErrInvalidID},
		{"empty nombre", func(c *models.Cliente) { c.Nombre = "" }, ErrInvalidNombre},
		{"nombre too long", func(c *models.Cliente) { c.Nombre = longName }, ErrInvalidNombre},
		{"empty apellido", func(c *models.Cliente) { c.Apellido = "" }, ErrInvalidApellido},
		{"empty email", func(c *models.Cliente) { c.Email = "" }, ErrInvalidEmail},
		{"email without domain", func(c *models.Cliente) { c.Email = "judu1@" }, ErrInvalidEmail},
		{"email with display name", func(c *models.Cliente) { c.Email = "Juan <judu1@mail.com>" }, ErrInvalidEmail},
		{"contacto too small", func(c *models.Cliente) { c.Contacto = 12345 }, ErrInvalidContacto},
		{"contacto too large", func(c *models.Cliente) { c.Contacto = 99999999999 }, ErrInvalidContacto},
		{"direccion too long", func(c *models.Cliente) { c.Direccion = &longDireccion }, ErrInvalidDireccion},
	}

	v := NewClienteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliente := validCliente()
			tt.mutate(&cliente)
			require.ErrorIs(t, v.Validate(context.Background(), cliente), tt.wantErr)
		})
	}
}

func TestClienteValidator_SelectedFieldsOnly(t *testing.T) {
	v := NewClienteValidator()

	cliente := validCliente()
	cliente.Email = "broken"

	// only the named fields are checked
	require.NoError(t, v.Validate(context.Background(), cliente, FieldID, FieldNombre))
	require.ErrorIs(t, v.Validate(context.Background(), cliente, FieldEmail), ErrInvalidEmail)
}

func TestClienteValidator_UnknownField(t *testing.T) {
	v := NewClienteValidator()
	err := v.Validate(context.Background(), validCliente(), "telefono")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestClienteValidator_Update(t *testing.T) {
	v := NewClienteValidator()
	ctx := context.Background()

	// an all-nil patch is an explicit no-op, not an error
	require.NoError(t, v.Validate(ctx, models.ClienteUpdate{}))

	nombre := "Diana"
	require.NoError(t, v.Validate(ctx, models.ClienteUpdate{Nombre: &nombre}))

	empty := ""
	require.ErrorIs(t, v.Validate(ctx, models.ClienteUpdate{Nombre: &empty}), ErrInvalidNombre)

	badEmail := "nope"
	require.ErrorIs(t, v.Validate(ctx, models.ClienteUpdate{Email: &badEmail}), ErrInvalidEmail)

	badContacto := int64(1)
	require.ErrorIs(t, v.Validate(ctx, models.ClienteUpdate{Contacto: &badContacto}), ErrInvalidContacto)
}

func TestClienteValidator_UnsupportedType(t *testing.T) {
	v := NewClienteValidator()
	require.ErrorIs(t, v.Validate(context.Background(), "a string"), ErrUnsupportedType)
}

func TestClienteValidator_PointerInputs(t *testing.T) {
	v := NewClienteValidator()
	cliente := validCliente()
	require.NoError(t, v.Validate(context.Background(), &cliente))

	patch := models.ClienteUpdate{}
	require.NoError(t, v.Validate(context.Background(), &patch))
}
