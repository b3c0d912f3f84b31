package models

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
}

// MessageResponse is the small `message` body the frontend matches on for
// auth, ownership and conflict errors
type MessageResponse struct {
	Message string `json:"message"`
}
