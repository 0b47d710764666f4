package validation

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Validation rule patterns
var (
	// EmailPattern is the school account email grammar; dotted local part, one or more
	// dotted host labels and a 2-7 letter top-level segment
	EmailPattern = `^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`

	// IdentifierLength is the exact length of a student identifier number
	IdentifierLength = 10

	// PasswordMinLength is the minimum length of a strong password
	PasswordMinLength = 8

	// PasswordSpecialChars lists the symbols that satisfy the special-character rule
	PasswordSpecialChars = "@#$%^&+="

	// EnrollmentYearMin and EnrollmentYearMax bound the accepted enrollment year (inclusive)
	EnrollmentYearMin = 1
	EnrollmentYearMax = math.MaxInt - 1
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsBlank reports whether s is empty or only whitespace, as defined by isWhitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !isWhitespace(r) {
			return false
		}
	}
	return true
}

// isWhitespace matches the space, line and paragraph separators except the no-break
// spaces U+00A0, U+2007 and U+202F, plus the ASCII controls TAB through CR and the
// information separators U+001C to U+001F. U+0085 is not whitespace.
func isWhitespace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return false
	case '\t', '\n', '\v', '\f', '\r', '\u001c', '\u001d', '\u001e', '\u001f':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}

// IsNumeric reports whether s is non-empty and every character is a decimal digit.
// Digits outside the Basic Multilingual Plane are rejected because each UTF-16 half
// of their surrogate pair is not a digit.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > maxBMPRune || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

const maxBMPRune = '\uffff'

// charLength counts UTF-16 code units, which is how identifier lengths are measured
func charLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// IsValidEmail checks email against EmailPattern. Blank input is never valid.
func IsValidEmail(email string) bool {
	return NewStringValidation(email).
		WithPattern(CompiledPatterns.Email).
		Validate()
}

// IsStrongPassword reports whether password has at least PasswordMinLength characters,
// no whitespace or line terminators, and at least one ASCII digit, lowercase letter,
// uppercase letter and PasswordSpecialChars symbol.
func IsStrongPassword(password string) bool {
	if password == "" {
		return false
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case isPasswordSpace(r):
			return false
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			hasSpecial = true
		}
	}

	return length >= PasswordMinLength && hasDigit && hasLower && hasUpper && hasSpecial
}

// isPasswordSpace matches the ASCII whitespace class plus the Unicode line terminators.
// Other Unicode spaces such as U+00A0 are ordinary password characters.
func isPasswordSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// IsValidStudentIdentifier reports whether id is exactly IdentifierLength numeric characters
func IsValidStudentIdentifier(id string) bool {
	return NewStringValidation(id).
		WithMinLength(IdentifierLength).
		WithMaxLength(IdentifierLength).
		WithNumeric(true).
		Validate()
}

// IsValidEnrollmentYear reports whether year lies in [EnrollmentYearMin, EnrollmentYearMax]
func IsValidEnrollmentYear(year int) bool {
	return NewNumericValidation(year).
		WithMin(EnrollmentYearMin).
		WithMax(EnrollmentYearMax).
		Validate()
}

// StringValidation describes the constraints on one required string value.
// Lengths are counted in UTF-16 code units; zero bounds are open.
type StringValidation struct {
	Value   string
	MinLen  int
	MaxLen  int
	Numeric bool
	Pattern *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{Value: value}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithNumeric requires every character to be a digit
func (v *StringValidation) WithNumeric(numeric bool) *StringValidation {
	v.Numeric = numeric
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if IsBlank(v.Value) {
		return false
	}

	length := charLength(v.Value)
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	if v.Numeric && !IsNumeric(v.Value) {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// NumericValidation describes an inclusive integer range; zero bounds are open
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	if v.Min != 0 && v.Value < v.Min {
		return false
	}
	if v.Max != 0 && v.Value > v.Max {
		return false
	}
	return true
}
