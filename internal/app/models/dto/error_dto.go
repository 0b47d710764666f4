package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
	"github.com/nandaardian19/studentprofile/internal/pkg/validation"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidStudentID ErrorCode = "VAL_002"

	// Request errors
	ErrorCodeBadRequest ErrorCode = "REQ_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning ErrorSeverity = "WARNING"
	ErrorSeverityError   ErrorSeverity = "ERROR"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"VAL_001"`
	Message  string        `json:"message" example:"Faculty should not be null, empty, or blank."`
	Field    string        `json:"field,omitempty" example:"faculty"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithSeverity sets the severity level of the error
func (e *ErrorDetail) WithSeverity(severity ErrorSeverity) *ErrorDetail {
	e.Severity = severity
	return e
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail, at time.Time) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: at,
	}
}

// HandleError converts any error returned by the service layer into an ErrorDetail
func HandleError(err error) *ErrorDetail {
	if ve, ok := apperrors.AsValidation(err); ok {
		code := ErrorCodeValidationFailed
		if errors.Is(ve, apperrors.ErrInvalidStudentID) {
			code = ErrorCodeInvalidStudentID
		}
		return NewErrorDetail(code, ve.Error()).WithField(ve.Field)
	}

	var ce *apperrors.CustomError
	if errors.As(err, &ce) && errors.Is(ce, apperrors.ErrBadRequest) {
		detail := NewErrorDetail(ErrorCodeBadRequest, ce.Error())
		if len(ce.Details) > 0 {
			detail = detail.WithDetails(ce.Details)
		}
		return detail
	}

	return NewErrorDetail(ErrorCodeInternalServer, fmt.Sprintf("unexpected error: %v", err))
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ErrorDetail `json:"errors"`
}

// NewValidationErrors creates a new validation errors container
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Errors: make([]ErrorDetail, 0),
	}
}

// AddError adds a validation error to the container
func (v *ValidationErrors) AddError(field, message string, severity ErrorSeverity) *ValidationErrors {
	code := ErrorCodeValidationFailed
	if field == "studentIdentifierNumber" {
		code = ErrorCodeInvalidStudentID
	}
	detail := NewErrorDetail(code, message).WithField(field).WithSeverity(severity)
	v.Errors = append(v.Errors, *detail)
	return v
}

// HasErrors reports whether any ERROR-severity entry exists
func (v *ValidationErrors) HasErrors() bool {
	for _, e := range v.Errors {
		if e.Severity == ErrorSeverityError {
			return true
		}
	}
	return false
}

// advisoryTags are rules a profile update reports but never enforces
var advisoryTags = map[string]bool{
	"school_email":    true,
	"strong_password": true,
}

// HandleValidationError converts struct validation failures into ValidationErrors
func HandleValidationError(fieldErrs []validation.FieldError) *ValidationErrors {
	out := NewValidationErrors()
	for _, fe := range fieldErrs {
		severity := ErrorSeverityError
		if advisoryTags[fe.Tag] {
			severity = ErrorSeverityWarning
		}
		out.AddError(fe.Field, fe.Message, severity)
	}
	return out
}
