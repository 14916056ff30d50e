package dto

// ErrorResponse is the error body shared by every failure path:
// {error, message, details?}. Rate-limited responses additionally carry
// retryAfter in seconds.
type ErrorResponse struct {
	Error      string   `json:"error" example:"Validation failed"`
	Message    string   `json:"message" example:"Please check the following errors:"`
	Details    []string `json:"details,omitempty"`
	RetryAfter int      `json:"retryAfter,omitempty" example:"42"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errLabel, message string) ErrorResponse {
	return ErrorResponse{
		Error:   errLabel,
		Message: message,
	}
}

// WithDetails attaches per-field violation messages to the response
func (e ErrorResponse) WithDetails(details []string) ErrorResponse {
	e.Details = details
	return e
}

// Pagination represents pagination metadata for student listings
type Pagination struct {
	Current       int   `json:"current" example:"1"`
	Total         int   `json:"total" example:"3"`
	Count         int   `json:"count" example:"20"`
	TotalStudents int64 `json:"totalStudents" example:"250"`
}
