package entity

// Customer cliente del punto de venta. Email es único entre clientes activos
// cuando no está vacío; LoyaltyPoints nunca es negativo.
type Customer struct {
	Base
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LoyaltyPoints int    `json:"loyalty_points"`
	IsActive      bool   `json:"is_active"`
}
