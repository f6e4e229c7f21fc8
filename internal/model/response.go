package model

// ErrorResponse is the standard JSON error body for every endpoint.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}
