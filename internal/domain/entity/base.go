package entity

import "time"

// Base campos comunes a toda entidad persistida.
// Revision es el token de concurrencia optimista: el almacenamiento lo incrementa
// en cada actualización exitosa y rechaza escrituras cuya revisión no coincida
// con la almacenada (ver repository.*.Update).
type Base struct {
	ID        string    `json:"id"`
	Revision  int64     `json:"revision"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
