package apperrors

import "errors"

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrBlankField       = errors.New("value should not be null, empty, or blank")
	ErrOutOfRange       = errors.New("value out of range")
	ErrInvalidStudentID = errors.New("invalid student identifier")
	ErrBadRequest       = errors.New("bad request")
)

// ValidationError reports a single rejected input field.
// It matches both ErrValidationFailed and its rule sentinel under errors.Is.
type ValidationError struct {
	Field   string
	Rule    error
	Message string
}

// NewValidationError creates a ValidationError for field, classified by rule
func NewValidationError(field string, rule error, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Rule:    rule,
		Message: message,
	}
}

// Error implements error interface
func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Rule != nil {
		return e.Field + ": " + e.Rule.Error()
	}
	return ErrValidationFailed.Error()
}

// Unwrap exposes the rule sentinel and ErrValidationFailed
func (e *ValidationError) Unwrap() []error {
	if e.Rule == nil {
		return []error{ErrValidationFailed}
	}
	return []error{ErrValidationFailed, e.Rule}
}

// AsValidation extracts a *ValidationError from err's chain
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewBadRequestError wraps a malformed-payload failure
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
