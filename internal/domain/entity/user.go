package entity

// User usuario del sistema. Los roles existen como datos pero no se aplican
// como control de acceso sobre las rutas de negocio.
type User struct {
	Base
	Username     string   `json:"username"` // único
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"full_name"`
	Roles        []string `json:"roles"`
	IsActive     bool     `json:"is_active"`
	LastLogin    string   `json:"last_login"`
}

// Role conjunto de permisos con nombre.
type Role struct {
	Base
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	IsActive    bool     `json:"is_active"`
}
