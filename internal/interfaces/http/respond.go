package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
)

// respondData envía {"success": true, "data": ...} con el status dado.
func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(dto.OK(data))
}

// respondList envía un listado con su conteo en el envoltorio.
func respondList(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(dto.OKCount(data, count))
}

// respondError mapea errores de dominio a status HTTP y envía
// {"success": false, "error": "..."}. Errores no clasificados son 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.As(err, &insufficient),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrOrderCancelled):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	}
	return c.Status(status).JSON(dto.Fail(err.Error()))
}

// respondNotFound 404 con mensaje explícito.
func respondNotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msg))
}

// respondBadRequest 400 con mensaje explícito.
func respondBadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msg))
}
