package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one rejected struct field, named by its json tag
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"rule"`
	Message string `json:"message"`
}

// StructValidator validates request payloads with the profile rules registered as tags
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator with the profile tags registered:
// notblank, student_identifier, school_email, strong_password and enrollment_year
func NewStructValidator() *StructValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	sv := &StructValidator{validate: validate}
	sv.registerProfileRules()
	return sv
}

func (sv *StructValidator) registerProfileRules() {
	sv.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return !IsBlank(fl.Field().String())
	})

	sv.validate.RegisterValidation("student_identifier", func(fl validator.FieldLevel) bool {
		return IsValidStudentIdentifier(fl.Field().String())
	})

	sv.validate.RegisterValidation("school_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	sv.validate.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	sv.validate.RegisterValidation("enrollment_year", func(fl validator.FieldLevel) bool {
		return IsValidEnrollmentYear(int(fl.Field().Int()))
	})
}

// Validate checks every field of s and returns all failures in declaration order.
// A nil result means s passed.
func (sv *StructValidator) Validate(s interface{}) ([]FieldError, error) {
	err := sv.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: s was not a struct
		return nil, err
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: formatValidationError(fe),
		})
	}
	return out, nil
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return e.Field() + " should not be null, empty, or blank"
	case "student_identifier":
		return e.Field() + " must be exactly 10 digits"
	case "school_email":
		return e.Field() + " must be a valid email address"
	case "strong_password":
		return e.Field() + " must be at least 8 characters with upper and lower case letters, a digit and one of @#$%^&+= and no whitespace"
	case "enrollment_year":
		return e.Field() + " must be a positive integer"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
