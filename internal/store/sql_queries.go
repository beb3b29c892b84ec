package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/dfcastellanos/clientes-api/models"
)

// Every query is composed with squirrel so that a single code path serves
// both placeholder formats ($1.. for PostgreSQL, ? for SQLite).

var (
	userColumns    = []string{"user_id", "username", "password_hash", "created_at"}
	clienteColumns = []string{"id", "nombre", "apellido", "email", "contacto", "direccion"}
	ordenColumns   = []string{"consecutivo", "tipo", "id_cliente"}
)

func buildInsertUserQuery(ph sq.PlaceholderFormat, user models.User) (string, []any, error) {
	return sq.Insert(user.TableName()).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectUserByUsernameQuery(ph sq.PlaceholderFormat, username string) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectUserByIDQuery(ph sq.PlaceholderFormat, userID int64) (string, []any, error) {
	return sq.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildClienteCollisionQuery implements the combined uniqueness pre-check:
// one SELECT covering both the document id and the email.
func buildClienteCollisionQuery(ph sq.PlaceholderFormat, id int64, email string) (string, []any, error) {
	return sq.Select("id", "email").
		From(models.Cliente{}.TableName()).
		Where(sq.Or{sq.Eq{"id": id}, sq.Eq{"email": email}}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}

// buildEmailTakenQuery checks whether another cliente (different id) already
// holds the given email. Used by the partial update.
func buildEmailTakenQuery(ph sq.PlaceholderFormat, id int64, email string) (string, []any, error) {
	return sq.Select("id").
		From(models.Cliente{}.TableName()).
		Where(sq.And{sq.Eq{"email": email}, sq.NotEq{"id": id}}).
		Limit(1).
		PlaceholderFormat(ph).
		ToSql()
}

func buildInsertClienteQuery(ph sq.PlaceholderFormat, c models.Cliente) (string, []any, error) {
	return sq.Insert(c.TableName()).
		Columns(clienteColumns...).
		Values(c.ID, c.Nombre, c.Apellido, c.Email, c.Contacto, c.Direccion).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectClienteByIDQuery(ph sq.PlaceholderFormat, id int64) (string, []any, error) {
	return sq.Select(clienteColumns...).
		From(models.Cliente{}.TableName()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectAllClientesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select(clienteColumns...).
		From(models.Cliente{}.TableName()).
		OrderBy("id ASC").
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpdateClienteQuery dynamically assembles the UPDATE statement from
// the non-nil slots of the patch. The caller must ensure the patch is not
// empty.
func buildUpdateClienteQuery(ph sq.PlaceholderFormat, id int64, patch models.ClienteUpdate) (string, []any, error) {
	builder := sq.Update(models.Cliente{}.TableName())

	if patch.Nombre != nil {
		builder = builder.Set("nombre", *patch.Nombre)
	}
	if patch.Apellido != nil {
		builder = builder.Set("apellido", *patch.Apellido)
	}
	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Contacto != nil {
		builder = builder.Set("contacto", *patch.Contacto)
	}
	if patch.Direccion != nil {
		builder = builder.Set("direccion", *patch.Direccion)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteClienteQuery(ph sq.PlaceholderFormat, id int64) (string, []any, error) {
	return sq.Delete(models.Cliente{}.TableName()).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
}

func buildCountOrdenesQuery(ph sq.PlaceholderFormat, clienteID int64) (string, []any, error) {
	return sq.Select("COUNT(*)").
		From(models.Orden{}.TableName()).
		Where(sq.Eq{"id_cliente": clienteID}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildSelectOrdenesQuery fetches the ordenes of one or more clientes in a
// single round trip; squirrel expands the id slice into an IN clause.
func buildSelectOrdenesQuery(ph sq.PlaceholderFormat, clienteIDs []int64) (string, []any, error) {
	return sq.Select(ordenColumns...).
		From(models.Orden{}.TableName()).
		Where(sq.Eq{"id_cliente": clienteIDs}).
		OrderBy("consecutivo ASC").
		PlaceholderFormat(ph).
		ToSql()
}

// searchFilter builds the case-insensitive substring condition over nombre,
// apellido and email. lower(...) LIKE keeps the behaviour identical across
// PostgreSQL and SQLite.
func searchFilter(query string) sq.Sqlizer {
	pattern := "%" + strings.ToLower(query) + "%"
	return sq.Or{
		sq.Expr("lower(nombre) LIKE ?", pattern),
		sq.Expr("lower(apellido) LIKE ?", pattern),
		sq.Expr("lower(email) LIKE ?", pattern),
	}
}

// searchOrderBy maps the validated sort/order pair onto an ORDER BY clause.
// Only nombre and apellido are sortable; apellido ascending is the default.
func searchOrderBy(params models.SearchParams) string {
	column := "apellido"
	if params.Sort == "nombre" {
		column = "nombre"
	}

	direction := "ASC"
	if params.Order == "desc" {
		direction = "DESC"
	}

	return column + " " + direction
}

func buildSearchClientesQuery(ph sq.PlaceholderFormat, params models.SearchParams) (string, []any, error) {
	builder := sq.Select(clienteColumns...).
		From(models.Cliente{}.TableName())

	if params.Query != "" {
		builder = builder.Where(searchFilter(params.Query))
	}

	return builder.
		OrderBy(searchOrderBy(params)).
		Offset(uint64(params.Offset)).
		Limit(uint64(params.Limit)).
		PlaceholderFormat(ph).
		ToSql()
}

// buildSearchCountQuery counts every match of the filter BEFORE pagination.
func buildSearchCountQuery(ph sq.PlaceholderFormat, params models.SearchParams) (string, []any, error) {
	builder := sq.Select("COUNT(*)").
		From(models.Cliente{}.TableName())

	if params.Query != "" {
		builder = builder.Where(searchFilter(params.Query))
	}

	return builder.
		PlaceholderFormat(ph).
		ToSql()
}
