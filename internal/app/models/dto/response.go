package dto

// Response is the baseline API envelope. Every endpoint reports success as a
// boolean plus an optional human-readable message.
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Operation completed successfully"`
}

// NewSuccessResponse creates a standard success response
func NewSuccessResponse(message string) Response {
	return Response{Success: true, Message: message}
}

// NewErrorResponse creates a standard failure response
func NewErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}
