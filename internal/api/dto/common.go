package dto

// MessageResponse carries a human-readable outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body for post lookups
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the success body for post mutations
type SuccessResponse struct {
	Success string `json:"success"`
}
