package dto

// Response envoltura uniforme de todas las respuestas HTTP:
// { success, message?, data? }.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK construye una respuesta exitosa con datos.
func OK(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Fail construye una respuesta de error.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
