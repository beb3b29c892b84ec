package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ClienteUpdate{}.IsEmpty())

	nombre := "Juan"
	assert.False(t, ClienteUpdate{Nombre: &nombre}.IsEmpty())

	empty := ""
	// a present-but-empty field still counts as carried
	assert.False(t, ClienteUpdate{Direccion: &empty}.IsEmpty())
}

func TestClienteUpdate_Apply(t *testing.T) {
	direccion := "Av Caracas #123"
	base := Cliente{
		ID:        18008332,
		Nombre:    "Juan",
		Apellido:  "Duran",
		Email:     "judu1@mail.com",
		Contacto:  3001000000,
		Direccion: &direccion,
	}

	nombre := "Juan Carlos"
	contacto := int64(3009999999)
	patched := ClienteUpdate{Nombre: &nombre, Contacto: &contacto}.Apply(base)

	assert.Equal(t, "Juan Carlos", patched.Nombre)
	assert.Equal(t, int64(3009999999), patched.Contacto)

	// untouched slots keep their values, and base stays unchanged
	assert.Equal(t, "Duran", patched.Apellido)
	assert.Equal(t, "judu1@mail.com", patched.Email)
	assert.Equal(t, "Juan", base.Nombre)
}

func TestClienteUpdate_PartialJSONDecodesToNilSlots(t *testing.T) {
	var patch ClienteUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"nombre":"Diana"}`), &patch))

	require.NotNil(t, patch.Nombre)
	assert.Equal(t, "Diana", *patch.Nombre)
	assert.Nil(t, patch.Apellido)
	assert.Nil(t, patch.Email)
	assert.Nil(t, patch.Contacto)
	assert.Nil(t, patch.Direccion)
}
