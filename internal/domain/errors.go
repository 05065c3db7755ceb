package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCodeNotFound       = errors.New("no hay verificación pendiente para la cuenta")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidOTP         = errors.New("código OTP inválido")
	ErrCodeExpired        = errors.New("código OTP expirado")
	ErrActivationFailed   = errors.New("no se pudo activar la cuenta")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrAccountInactive    = errors.New("cuenta no activada")
)
