package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// SuccessResponse cuerpo de éxito HTTP: {success, data, message}.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// Page metadatos de paginación en listados.
type Page struct {
	Total    int `json:"total"`
	PerPage  int `json:"per_page"`
	Page     int `json:"current_page"`
	LastPage int `json:"last_page"`
}
