package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	// Solicitudes de suscripción y facturación.
	ErrInvalidStateTransition = errors.New("la solicitud ya no está pendiente")
	ErrInvalidAmount          = errors.New("el monto debe ser mayor o igual a cero")
	ErrInvalidDate            = errors.New("fecha de vencimiento inválida (formato AAAA-MM-DD)")
	ErrCustomerNotFound       = errors.New("cliente no encontrado")
	ErrInvoiceNotFound        = errors.New("factura no encontrada")
	ErrRequestNotFound        = errors.New("solicitud de suscripción no encontrada")
	ErrDuplicateInvoiceNumber = errors.New("número de factura duplicado")
	ErrStoreUnavailable       = errors.New("almacenamiento no disponible, intente de nuevo")

	// ErrPartialApproval: el cliente fue creado pero la solicitud quedó en
	// pendiente porque falló la actualización de estado. Requiere
	// reconciliación manual; nunca debe tratarse como un fallo limpio.
	ErrPartialApproval = errors.New("aprobación parcial: cliente creado pero la solicitud sigue pendiente")
)
