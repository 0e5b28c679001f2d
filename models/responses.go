package models

// ErrorResponse is the body of every error response:
//
//	{"error": {"message": "Map not found."}}
type ErrorResponse struct {
	Error ErrorMessage `json:"error"`
}

// ErrorMessage carries the human readable error text.
type ErrorMessage struct {
	Message string `json:"message"`
}

// NewErrorResponse builds an [ErrorResponse] with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorMessage{Message: message}}
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}
