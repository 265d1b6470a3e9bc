package dto

import "time"

// LoginRequest entrada para login. Los nombres de campo siguen el contrato
// del frontend (correo en lugar de email).
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// UserView vista pública mínima del usuario (la que viaja junto al token).
type UserView struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
	Correo string `json:"correo"`
	Rol    string `json:"rol"`
}

// UserResponse salida completa de un usuario (sin password).
type UserResponse struct {
	ID        int       `json:"id"`
	Nombre    string    `json:"nombre"`
	Correo    string    `json:"correo"`
	Rol       string    `json:"rol"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida del login con el token de sesión.
type LoginResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// RegisterRequest entrada para registrar un usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// RegisterResponse salida del registro.
type RegisterResponse struct {
	Message string       `json:"message"`
	Data    UserResponse `json:"data"`
}

// UpdateUserRequest entrada para editar un usuario; campos vacíos se conservan.
type UpdateUserRequest struct {
	Nombre   string `json:"nombre"`
	Correo   string `json:"correo"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// ForgotPasswordRequest entrada para solicitar la recuperación de contraseña.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest entrada para restablecer la contraseña con el token recibido por mail.
type ResetPasswordRequest struct {
	ID       int    `json:"id"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// MessageResponse respuesta genérica con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// RolesResponse salida del catálogo de roles.
type RolesResponse struct {
	Status int      `json:"status"`
	Data   []string `json:"data"`
}
