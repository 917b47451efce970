package entity

// Warehouse bodega física donde se mantiene stock.
type Warehouse struct {
	Base
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}
