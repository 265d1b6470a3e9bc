package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nmoreno/alquiler-api/internal/application/dto"
	"github.com/nmoreno/alquiler-api/internal/application/usecase"
	"github.com/nmoreno/alquiler-api/internal/domain"
	"github.com/nmoreno/alquiler-api/pkg/logger"
)

// UserHandler maneja registro, edición y baja de usuarios.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler de usuarios.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// Register crea un usuario nuevo. Sin rol explícito queda como empleado.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido"})
	}
	if in.Nombre == "" || in.Correo == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Faltan datos"})
	}
	user, err := h.uc.Register(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "El usuario ya existe con ese Email"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Rol inválido"})
		}
		h.log.Error().Err(err).Str("correo", in.Correo).Msg("registrar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al crear el usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterResponse{
		Message: "Usuario registrado exitosamente",
		Data:    *user,
	})
}

// List devuelve todos los usuarios (sin password).
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("listar usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al obtener usuarios"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": fiber.StatusOK, "data": users})
}

// GetByID devuelve un usuario por ID (sin password).
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "ID inválido"})
	}
	user, err := h.uc.GetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		}
		h.log.Error().Err(err).Int("user_id", id).Msg("obtener usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al obtener el usuario"})
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

// Update edita un usuario; re-hashea el password solo si viene en el body.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "ID inválido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido"})
	}
	user, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Rol inválido"})
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "El usuario ya existe con ese Email"})
		}
		h.log.Error().Err(err).Int("user_id", id).Msg("actualizar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al actualizar el usuario"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Usuario actualizado exitosamente",
		"data":    user,
	})
}

// Delete da de baja lógica al usuario (is_active = false).
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "ID inválido"})
	}
	if err := h.uc.Deactivate(id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Usuario no encontrado"})
		}
		h.log.Error().Err(err).Int("user_id", id).Msg("eliminar usuario")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Error al eliminar el usuario"})
	}
	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "Usuario eliminado (inactivado) exitosamente"})
}

// Roles devuelve el catálogo de roles.
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(dto.RolesResponse{
		Status: fiber.StatusOK,
		Data:   h.uc.Roles(),
	})
}
