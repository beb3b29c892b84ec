package models

// Orden is a dependent record referencing a Cliente. Orders are created
// and managed by a separate subsystem; within this service they are
// read-only and exist to guard customer deletion.
type Orden struct {
	// Consecutivo is the server-generated order identifier.
	Consecutivo int64 `json:"consecutivo"`

	// Tipo is a free-form order type label.
	Tipo string `json:"tipo"`

	// IDCliente is the document number of the owning Cliente.
	IDCliente int64 `json:"id_cliente"`
}

// TableName returns the name of the database table
// associated with the Orden model.
func (o Orden) TableName() string {
	return "ordenes"
}
