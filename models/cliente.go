package models

// Cliente is the primary managed entity: a customer identified by an
// external document number supplied by the caller at creation time.
//
// Both ID and Email are globally unique. Direccion is optional and is
// represented as a pointer so that a missing address survives JSON
// round-trips as null rather than an empty string.
type Cliente struct {
	// ID is the customer's document number. Caller-supplied, at least
	// six digits (>= 100000), never generated by the server.
	ID int64 `json:"id"`

	// Nombre is the customer's first name, 1 to 100 characters.
	Nombre string `json:"nombre"`

	// Apellido is the customer's last name, 1 to 100 characters.
	Apellido string `json:"apellido"`

	// Email is the customer's unique contact email.
	Email string `json:"email"`

	// Contacto is the customer's phone number as digits,
	// within [300000000, 9999999999].
	Contacto int64 `json:"contacto"`

	// Direccion is the customer's optional street address, up to 255
	// characters. Nil when not provided.
	Direccion *string `json:"direccion"`

	// Ordenes holds the orders referencing this customer. Orders are
	// managed elsewhere; here they only block deletion and are surfaced
	// read-only in responses.
	Ordenes []Orden `json:"ordenes"`
}

// TableName returns the name of the database table
// associated with the Cliente model.
func (c Cliente) TableName() string {
	return "clientes"
}

// ClienteUpdate is an explicit partial-update patch for a Cliente.
// Each updatable field has one optional slot; nil means "leave unchanged".
// An all-nil patch is a valid no-op.
type ClienteUpdate struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Email     *string `json:"email"`
	Contacto  *int64  `json:"contacto"`
	Direccion *string `json:"direccion"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (u ClienteUpdate) IsEmpty() bool {
	return u.Nombre == nil && u.Apellido == nil && u.Email == nil &&
		u.Contacto == nil && u.Direccion == nil
}

// Apply merges the patch onto a copy of c and returns the result.
// Only non-nil slots overwrite the corresponding field.
func (u ClienteUpdate) Apply(c Cliente) Cliente {
	if u.Nombre != nil {
		c.Nombre = *u.Nombre
	}
	if u.Apellido != nil {
		c.Apellido = *u.Apellido
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Contacto != nil {
		c.Contacto = *u.Contacto
	}
	if u.Direccion != nil {
		c.Direccion = u.Direccion
	}
	return c
}

// SearchParams carries the search, sort and pagination arguments for
// ClienteRepository.Search. Offset and Limit are expected to be already
// validated and clamped by the service layer.
type SearchParams struct {
	// Query is an optional case-insensitive substring matched against
	// nombre, apellido or email. Empty means "match everything".
	Query string

	// Sort is the sort field: "nombre" or "apellido" (the default).
	Sort string

	// Order is the sort direction: "asc" (the default) or "desc".
	Order string

	// Offset is (page-1)*Limit.
	Offset int

	// Limit is the page size, within [1, 100].
	Limit int
}
