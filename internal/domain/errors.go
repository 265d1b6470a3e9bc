package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("contraseña incorrecta")
	ErrMissingToken       = errors.New("token requerido")
	ErrInvalidToken       = errors.New("token inválido o expirado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInactiveUser       = errors.New("cuenta inactiva")
	ErrResetTokenInvalid  = errors.New("el token es invalido")
	ErrResetTokenExpired  = errors.New("el token está vencido")
)
