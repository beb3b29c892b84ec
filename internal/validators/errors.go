package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("document id must have at least six digits")
	ErrInvalidNombre    = errors.New("nombre must be between 1 and 100 characters")
	ErrInvalidApellido  = errors.New("apellido must be between 1 and 100 characters")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidContacto  = errors.New("contacto must be a phone number between 300000000 and 9999999999")
	ErrInvalidDireccion = errors.New("direccion cannot exceed 255 characters")
)
