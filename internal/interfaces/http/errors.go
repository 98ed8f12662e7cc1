package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/sedes-api/internal/application/dto"
	"github.com/tu-usuario/sedes-api/internal/domain"
)

// respondError mapea errores de dominio a respuestas HTTP. Cada razón de
// rechazo del login conserva su código y mensaje propios: la UI diferencia
// los mensajes, así que aquí no se colapsan en un error genérico.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password requeridos"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrUserInactive):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "USER_INACTIVE", Message: domain.ErrUserInactive.Error()})
	case errors.Is(err, domain.ErrNoRolesAssigned):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_ROLES", Message: domain.ErrNoRolesAssigned.Error()})
	case errors.Is(err, domain.ErrInactiveRole):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE_ROLE", Message: domain.ErrInactiveRole.Error()})
	case errors.Is(err, domain.ErrNoReadAccess):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NO_READ_ACCESS", Message: domain.ErrNoReadAccess.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrUserNotFound.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: domain.ErrEmailAlreadyExists.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
