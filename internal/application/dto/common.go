package dto

// BaseResponse envoltura uniforme de todas las respuestas de la API:
// { "status": bool, "message": string|null, "body": T|null }.
type BaseResponse struct {
	Status  bool    `json:"status"`
	Message *string `json:"message"`
	Body    any     `json:"body"`
}

// Ok respuesta exitosa con body y sin mensaje.
func Ok(body any) BaseResponse {
	return BaseResponse{Status: true, Message: nil, Body: body}
}

// OkMessage respuesta exitosa con mensaje para el usuario.
func OkMessage(msg string) BaseResponse {
	return BaseResponse{Status: true, Message: &msg, Body: nil}
}

// Fail resultado semántico negativo (no es un fallo del sistema).
func Fail(msg string) BaseResponse {
	return BaseResponse{Status: false, Message: &msg, Body: nil}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
