package entity

// Category clasifica productos. ParentCategoryID es una referencia débil
// para jerarquías simples.
type Category struct {
	Base
	Name             string `json:"name"`
	Description      string `json:"description"`
	ParentCategoryID string `json:"parent_category_id"`
	IsActive         bool   `json:"is_active"`
}
