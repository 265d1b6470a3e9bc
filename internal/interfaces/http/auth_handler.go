package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/internal/application/dto"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/pkg/logger"
)

// AuthHandler maneja login, usuario actual y recuperación de contraseña.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login autentica con correo/password y devuelve el token de sesión.
// El mensaje distingue usuario inexistente de contraseña incorrecta
// a propósito: es el contrato que espera el frontend.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido"})
	}
	if in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Contraseña incorrecta"})
		case errors.Is(err, domain.ErrInactiveUser):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Cuenta inactiva"})
		}
		h.log.Error().Err(err).Str("correo", in.Correo).Msg("login")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error en el login"})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Me devuelve el usuario autenticado (requiere AuthMiddleware en la ruta).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		}
		h.log.Error().Err(err).Int("user_id", GetUserID(c)).Msg("me")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al obtener el usuario"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// ForgotPassword emite un token de reset y envía el link por mail.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	if err := h.uc.ForgotPassword(in.Email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "No existe el usuario"})
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("forgot password")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al enviar el mail"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Email enviado correctamente"})
}

// ResetPassword consume el token de reset y actualiza la contraseña.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido"})
	}
	if in.ID == 0 || in.Token == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	if err := h.uc.ResetPassword(in.ID, in.Token, in.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrResetTokenInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "El token es invalido"})
		case errors.Is(err, domain.ErrResetTokenExpired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "El token está vencido"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "El usuario no existe"})
		}
		h.log.Error().Err(err).Int("user_id", in.ID).Msg("reset password")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al resetear el password"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "La contraseña se actualizó con éxito"})
}
