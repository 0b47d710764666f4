package validation

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("   "))
	assert.True(t, IsBlank("\t\n"))
	assert.False(t, IsBlank(" a "))
}

func TestIsBlankWhitespaceSet(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"\u001c\u001d\u001e\u001f", true},
		{"\v\f\r", true},
		{"\u2003\u3000", true},
		{"\u2028\u2029", true},
		{"\u00a0", false},
		{"\u2007", false},
		{"\u202f", false},
		{"\u0085", false},
		{"\u200b", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBlank(tt.in), "input %q", tt.in)
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.True(t, IsNumeric("١٢٣"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12 34"))
	assert.False(t, IsNumeric("-12"))
	assert.False(t, IsNumeric("1.5"))
	assert.False(t, IsNumeric("\U0001D7CE\U0001D7CF"))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"john.doe@mail.university.ac.id", true},
		{"x_y+z&w*q-1@host-1.example.museum", true},
		{"a@b.abcdefg", true},
		{"", false},
		{"not-an-email", false},
		{"a@b.c", false},
		{"a@b.abcdefgh", false},
		{"a@b.c0", false},
		{"a@localhost", false},
		{".a@b.co", false},
		{"a.@b.co", false},
		{"a..b@b.co", false},
		{"a@.b.co", false},
		{"a@b_c.co", false},
		{"a b@c.co", false},
		{"a@b.co\n", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"Abcdefg1@", true},
		{"Aa1@Aa1@", true},
		{"P4ss=wörd", true},
		{"Aa1\u00a0xyz#", true},
		{"", false},
		{"abcdefg1", false},
		{"Aa1@Aa1", false},
		{"ABCDEFG1@", false},
		{"abcdefg1@", false},
		{"Abcdefgh@", false},
		{"Abcdefg1!", false},
		{"Abcd efg1@", false},
		{"Abcdefg1@\t", false},
		{"Abcdefg1@\u2028", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsStrongPassword(tt.password), "password %q", tt.password)
	}
}

func TestIsValidStudentIdentifier(t *testing.T) {
	assert.True(t, IsValidStudentIdentifier("2024000001"))
	assert.False(t, IsValidStudentIdentifier("12345"))
	assert.False(t, IsValidStudentIdentifier("12345678901"))
	assert.False(t, IsValidStudentIdentifier("12345abcde"))
	assert.False(t, IsValidStudentIdentifier("          "))
	assert.False(t, IsValidStudentIdentifier(""))
	// five supplementary-plane digits are ten UTF-16 units but not numeric
	assert.False(t, IsValidStudentIdentifier("\U0001D7CE\U0001D7CF\U0001D7D0\U0001D7D1\U0001D7D2"))
	assert.True(t, IsValidStudentIdentifier("١٢٣٤٥٦٧٨٩٠"))
}

func TestIsValidEnrollmentYear(t *testing.T) {
	for _, y := range []int{1, 2024, math.MaxInt - 1} {
		assert.True(t, IsValidEnrollmentYear(y), "year %d", y)
	}
	for _, y := range []int{0, -1, math.MinInt, math.MaxInt} {
		assert.False(t, IsValidEnrollmentYear(y), "year %d", y)
	}
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation(" \t").Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())

	lower := regexp.MustCompile(`^[a-z]+$`)
	assert.True(t, NewStringValidation("abc").WithPattern(lower).Validate())
	assert.False(t, NewStringValidation("aBc").WithPattern(lower).Validate())
}
