package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parent_category_id"`
}

// UpdateCategoryRequest campos nil no se tocan.
type UpdateCategoryRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *string `json:"parent_category_id"`
	IsActive         *bool   `json:"is_active"`
}

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentTerms  string `json:"payment_terms"`
}

// UpdateSupplierRequest campos nil no se tocan.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	PaymentTerms  *string `json:"payment_terms"`
	IsActive      *bool   `json:"is_active"`
}

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest campos nil no se tocan.
type UpdateCustomerRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	LoyaltyPoints *int    `json:"loyalty_points"`
	IsActive      *bool   `json:"is_active"`
}

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// UpdateWarehouseRequest campos nil no se tocan.
type UpdateWarehouseRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}
