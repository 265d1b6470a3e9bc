package dto

// ErrorResponse cuerpo de error HTTP. El cliente solo ve el mensaje;
// la causa interna queda en los logs.
type ErrorResponse struct {
	Message string `json:"message"`
}
