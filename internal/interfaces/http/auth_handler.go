package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-pos/internal/application/auth"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
)

// AuthHandler maneja registro, login y perfil.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario. 409 si el username ya existe.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusCreated, out)
}

// Login verifica credenciales y devuelve un JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}

// Me devuelve el usuario autenticado (requiere el middleware de auth).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, out)
}
