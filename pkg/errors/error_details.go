package errors

// ErrorDetails contains a detailed error information
type ErrorDetails struct {
	// Message is a human readable description of the error
	Message string
	// Code is a machine readable code identifying the error
	Code string
	// Field is the request or configuration field the error relates to, if any
	Field string
	// Object is the object the error relates to, if any
	Object interface{}
}

// NewErrorDetails create new ErrorDetails
func NewErrorDetails(message, code, field string) *ErrorDetails {
	return &ErrorDetails{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// Error implement error interface
func (e *ErrorDetails) Error() string {
	return e.Message
}

// ErrorCodeEquals check if given error is an ErrorDetails carrying the given code
func ErrorCodeEquals(err error, code ErrorCode) bool {
	details, ok := err.(*ErrorDetails)
	if !ok {
		return false
	}

	return details.Code == string(code)
}
