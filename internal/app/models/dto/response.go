package dto

// APIResponse represents a standard success envelope for API endpoints
type APIResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewSuccessResponse wraps payload data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse builds an envelope carrying only a message
func NewMessageResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}
