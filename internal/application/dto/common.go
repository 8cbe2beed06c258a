package dto

// ErrorResponse cuerpo de error HTTP del panel.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
