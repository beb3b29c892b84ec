package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/dfcastellanos/clientes-api/models"
)

const (
	FieldID        = "id"
	FieldNombre    = "nombre"
	FieldApellido  = "apellido"
	FieldEmail     = "email"
	FieldContacto  = "contacto"
	FieldDireccion = "direccion"
)

// Bounds for cliente fields. The document id must have at least six digits;
// contacto is a bare phone number without formatting.
const (
	MinClienteID    = 100000
	MinContacto     = 300000000
	MaxContacto     = 9999999999
	MaxNameLen      = 100
	MaxDireccionLen = 255
)

type ClienteValidator struct {
}

func NewClienteValidator() Validator {
	return &ClienteValidator{}
}

func (v *ClienteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Cliente:
		return v.validateCliente(ctx, value, fields...)
	case *models.Cliente:
		return v.validateCliente(ctx, *value, fields...)

	case models.ClienteUpdate:
		return v.validateClienteUpdate(ctx, value, fields...)
	case *models.ClienteUpdate:
		return v.validateClienteUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ClienteValidator) validateCliente(_ context.Context, c models.Cliente, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldNombre, FieldApellido, FieldEmail, FieldContacto, FieldDireccion}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if c.ID < MinClienteID {
				return ErrInvalidID
			}
		case FieldNombre:
			if err := validateName(c.Nombre, ErrInvalidNombre); err != nil {
				return err
			}
		case FieldApellido:
			if err := validateName(c.Apellido, ErrInvalidApellido); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(c.Email); err != nil {
				return err
			}
		case FieldContacto:
			if err := validateContacto(c.Contacto); err != nil {
				return err
			}
		case FieldDireccion:
			if c.Direccion != nil && utf8.RuneCountInString(*c.Direccion) > MaxDireccionLen {
				return ErrInvalidDireccion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateClienteUpdate checks only the slots the patch actually carries.
// An all-nil patch is valid: it is an explicit no-op.
func (v *ClienteValidator) validateClienteUpdate(_ context.Context, u models.ClienteUpdate, _ ...string) error {
	if u.Nombre != nil {
		if err := validateName(*u.Nombre, ErrInvalidNombre); err != nil {
			return err
		}
	}
	if u.Apellido != nil {
		if err := validateName(*u.Apellido, ErrInvalidApellido); err != nil {
			return err
		}
	}
	if u.Email != nil {
		if err := validateEmail(*u.Email); err != nil {
			return err
		}
	}
	if u.Contacto != nil {
		if err := validateContacto(*u.Contacto); err != nil {
			return err
		}
	}
	if u.Direccion != nil && utf8.RuneCountInString(*u.Direccion) > MaxDireccionLen {
		return ErrInvalidDireccion
	}

	return nil
}

func validateName(name string, invalid error) error {
	length := utf8.RuneCountInString(name)
	if length < 1 || length > MaxNameLen {
		return invalid
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func validateContacto(contacto int64) error {
	if contacto < MinContacto || contacto > MaxContacto {
		return ErrInvalidContacto
	}
	return nil
}
