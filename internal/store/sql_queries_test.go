// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 David Castellanos

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfcastellanos/clientes-api/models"
)

func Test_buildInsertUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{Username: "admin", PasswordHash: "$2a$10$hash"}

	query, args, err := buildInsertUserQuery(sq.Dollar, user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Equal(t, "admin", args[0])
	require.Equal(t, "$2a$10$hash", args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "username")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildInsertUserQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildInsertUserQuery(sq.Question, models.User{Username: "u", PasswordHash: "h"})
	require.NoError(t, err)

	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildSelectUserByUsernameQuery(t *testing.T) {
	query, args, err := buildSelectUserByUsernameQuery(sq.Dollar, "admin")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "admin", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "username = $1")

	for _, col := range []string{"user_id", "username", "password_hash", "created_at"} {
		require.Contains(t, q, col)
	}
}

func Test_buildClienteCollisionQuery(t *testing.T) {
	query, args, err := buildClienteCollisionQuery(sq.Dollar, 18008332, "judu1@mail.com")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, int64(18008332), args[0])
	require.Equal(t, "judu1@mail.com", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "from clientes")
	require.Contains(t, q, "or")
	require.Contains(t, q, "limit 1")
}

func Test_buildEmailTakenQuery_ExcludesOwnRow(t *testing.T) {
	query, args, err := buildEmailTakenQuery(sq.Dollar, 18008332, "judu1@mail.com")
	require.NoError(t, err)

	require.Len(t, args, 2)

	q := strings.ToLower(query)
	require.Contains(t, q, "email = $1")
	require.Contains(t, q, "id <> $2")
}

func Test_buildUpdateClienteQuery(t *testing.T) {
	nombre := "Juan"
	email := "nuevo@mail.com"

	tests := []struct {
		name       string
		patch      models.ClienteUpdate
		wantArgs   int
		checkQuery func(t *testing.T, query string)
	}{
		{
			name:     "single field",
			patch:    models.ClienteUpdate{Nombre: &nombre},
			wantArgs: 2, // value + id
			checkQuery: func(t *testing.T, query string) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "set nombre")
				assert.NotContains(t, q, "email")
			},
		},
		{
			name:     "two fields",
			patch:    models.ClienteUpdate{Nombre: &nombre, Email: &email},
			wantArgs: 3,
			checkQuery: func(t *testing.T, query string) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "nombre")
				assert.Contains(t, q, "email")
				assert.NotContains(t, q, "apellido")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateClienteQuery(sq.Dollar, 18008332, tt.patch)
			require.NoError(t, err)
			require.Len(t, args, tt.wantArgs)
			require.Equal(t, int64(18008332), args[len(args)-1])
			tt.checkQuery(t, query)
		})
	}
}

func Test_buildSelectOrdenesQuery_ExpandsIDs(t *testing.T) {
	query, args, err := buildSelectOrdenesQuery(sq.Dollar, []int64{1, 2, 3})
	require.NoError(t, err)

	require.Len(t, args, 3)

	q := strings.ToLower(query)
	require.Contains(t, q, "from ordenes")
	require.Contains(t, q, "id_cliente in ($1,$2,$3)")
	require.Contains(t, q, "order by consecutivo asc")
}

func Test_buildSearchClientesQuery(t *testing.T) {
	tests := []struct {
		name       string
		params     models.SearchParams
		wantArgs   int
		checkQuery func(t *testing.T, query string)
	}{
		{
			name:     "no filter uses default order",
			params:   models.SearchParams{Sort: "apellido", Order: "asc", Offset: 0, Limit: 10},
			wantArgs: 0,
			checkQuery: func(t *testing.T, query string) {
				q := strings.ToLower(query)
				assert.NotContains(t, q, "like")
				assert.Contains(t, q, "order by apellido asc")
				assert.Contains(t, q, "limit 10")
				assert.Contains(t, q, "offset 0")
			},
		},
		{
			name:     "filter lowers the pattern",
			params:   models.SearchParams{Query: "DurAn", Sort: "apellido", Order: "asc", Offset: 0, Limit: 10},
			wantArgs: 3, // one pattern per searched column
			checkQuery: func(t *testing.T, query string) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "lower(nombre) like")
				assert.Contains(t, q, "lower(apellido) like")
				assert.Contains(t, q, "lower(email) like")
			},
		},
		{
			name:     "sort nombre descending",
			params:   models.SearchParams{Sort: "nombre", Order: "desc", Offset: 20, Limit: 10},
			wantArgs: 0,
			checkQuery: func(t *testing.T, query string) {
				q := strings.ToLower(query)
				assert.Contains(t, q, "order by nombre desc")
				assert.Contains(t, q, "offset 20")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchClientesQuery(sq.Dollar, tt.params)
			require.NoError(t, err)
			require.Len(t, args, tt.wantArgs)
			tt.checkQuery(t, query)
		})
	}
}

func Test_buildSearchClientesQuery_PatternIsLowered(t *testing.T) {
	_, args, err := buildSearchClientesQuery(sq.Dollar, models.SearchParams{
		Query: "DurAn", Sort: "apellido", Order: "asc", Limit: 10,
	})
	require.NoError(t, err)

	require.Len(t, args, 3)
	for _, arg := range args {
		require.Equal(t, "%duran%", arg)
	}
}

func Test_buildSearchCountQuery_HasNoPagination(t *testing.T) {
	query, args, err := buildSearchCountQuery(sq.Dollar, models.SearchParams{
		Query: "duran", Sort: "apellido", Order: "asc", Offset: 40, Limit: 10,
	})
	require.NoError(t, err)

	require.Len(t, args, 3)

	q := strings.ToLower(query)
	require.Contains(t, q, "count(*)")
	require.NotContains(t, q, "limit")
	require.NotContains(t, q, "offset")
}
