package entity

// Supplier proveedor de productos (lado compras).
type Supplier struct {
	Base
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"payment_terms"`
	IsActive      bool   `json:"is_active"`
}
