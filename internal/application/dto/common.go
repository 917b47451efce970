package dto

// APIResponse envoltura uniforme de todas las respuestas JSON del API:
// {"success": bool, "data": ..., "error": "...", "count": n}.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// OKCount construye una respuesta exitosa de listado con conteo.
func OKCount(data interface{}, count int) APIResponse {
	return APIResponse{Success: true, Data: data, Count: &count}
}

// Fail construye una respuesta de error.
func Fail(msg string) APIResponse {
	return APIResponse{Success: false, Error: msg}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"skip"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
