package models

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope wrapping every JSON response.
// swagger:model APIResponse
type APIResponse struct {
	// Either "success" or "error"
	// example: success
	Status string `json:"status"`

	// Human readable outcome
	// example: Profile retrieved successfully
	Message string `json:"message"`

	// Payload, null on errors
	Data any `json:"data"`
}

// Success builds a success envelope.
func Success(message string, data any) APIResponse {
	return APIResponse{Status: StatusSuccess, Message: message, Data: data}
}

// Failure builds an error envelope with a null payload.
func Failure(message string) APIResponse {
	return APIResponse{Status: StatusError, Message: message}
}
