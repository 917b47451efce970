package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderCancelled     = errors.New("la orden ya está cancelada")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// InsufficientStockError detalla un rechazo por stock insuficiente.
// El mensaje siempre incluye producto, disponible y solicitado.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s. Disponible: %d, Solicitado: %d",
		e.ProductName, e.Available, e.Requested)
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
