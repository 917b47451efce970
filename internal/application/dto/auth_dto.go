package dto

import "github.com/tu-usuario/inventario-pos/internal/domain/entity"

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}
