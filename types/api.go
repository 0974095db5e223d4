package types

// ErrorsResponse is the standardized error envelope. Validation failures carry
// one human-readable message per offending field; server failures carry a
// single generic message.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// NewErrorsResponse creates an error envelope from one or more messages.
func NewErrorsResponse(errs ...string) *ErrorsResponse {
	return &ErrorsResponse{Errors: errs}
}
