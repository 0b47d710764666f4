package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
	"github.com/nandaardian19/studentprofile/internal/pkg/helpers"
	"github.com/nandaardian19/studentprofile/internal/pkg/logger"
	"github.com/nandaardian19/studentprofile/internal/pkg/validation"
)

// Field names used in validation errors and log entries
const (
	FieldProgramStudy            = "programStudy"
	FieldFaculty                 = "faculty"
	FieldEnrollmentYear          = "enrollmentYear"
	FieldEmail                   = "email"
	FieldPassword                = "password"
	FieldUserName                = "userName"
	FieldFirstName               = "firstName"
	FieldLastName                = "lastName"
	FieldGender                  = "gender"
	FieldStudentIdentifierNumber = "studentIdentifierNumber"
)

// User is a student's profile record. Every setter validates before it assigns,
// so a failed call leaves the record as it was.
// A User is not safe for concurrent mutation.
type User struct {
	userID string

	programStudy   string
	faculty        string
	enrollmentYear int

	email    string
	password string
	userName string

	firstName               string
	lastName                string
	gender                  string
	studentIdentifierNumber string

	log   zerolog.Logger
	clock helpers.Clock
}

// Option configures a User at construction
type Option func(*userOptions)

type userOptions struct {
	log   *zerolog.Logger
	clock helpers.Clock
	newID func() string
}

// WithLogger sets the sink for rejected-field error logs
func WithLogger(l zerolog.Logger) Option {
	return func(o *userOptions) { o.log = &l }
}

// WithClock sets the calendar used by CalculateEnrollmentYear
func WithClock(c helpers.Clock) Option {
	return func(o *userOptions) { o.clock = c }
}

// WithIDGenerator replaces the random UUID generator
func WithIDGenerator(fn func() string) Option {
	return func(o *userOptions) { o.newID = fn }
}

// NewUser creates an empty record with a freshly generated ID
func NewUser(opts ...Option) *User {
	o := userOptions{
		clock: helpers.SystemClock,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}

	lgr := logger.For("user")
	if o.log != nil {
		lgr = *o.log
	}
	if o.clock == nil {
		o.clock = helpers.SystemClock
	}

	id := o.newID()
	return &User{
		userID: id,
		log:    lgr.With().Str("userID", id).Logger(),
		clock:  o.clock,
	}
}

// ID returns the identifier assigned at construction
func (u *User) ID() string { return u.userID }

func (u *User) ProgramStudy() string            { return u.programStudy }
func (u *User) Faculty() string                 { return u.faculty }
func (u *User) EnrollmentYear() int             { return u.enrollmentYear }
func (u *User) Email() string                   { return u.email }
func (u *User) Password() string                { return u.password }
func (u *User) UserName() string                { return u.userName }
func (u *User) FirstName() string               { return u.firstName }
func (u *User) LastName() string                { return u.lastName }
func (u *User) Gender() string                  { return u.gender }
func (u *User) StudentIdentifierNumber() string { return u.studentIdentifierNumber }

// reject logs the failure at error level and returns it as a ValidationError
func (u *User) reject(field string, rule error, message string) error {
	u.log.Error().Str("field", field).Msg(message)
	return apperrors.NewValidationError(field, rule, message)
}

type requiredField struct {
	name  string
	label string
	value string
}

func (u *User) requireNotBlank(fields ...requiredField) error {
	for _, f := range fields {
		if validation.IsBlank(f.value) {
			return u.reject(f.name, apperrors.ErrBlankField, f.label+" should not be null, empty, or blank.")
		}
	}
	return nil
}

// SetSchoolIdentifier sets program of study, faculty and enrollment year.
// Checks run in that order and the first failure is returned.
func (u *User) SetSchoolIdentifier(programStudy, faculty string, enrollmentYear int) error {
	if err := u.requireNotBlank(
		requiredField{FieldProgramStudy, "Program study", programStudy},
		requiredField{FieldFaculty, "Faculty", faculty},
	); err != nil {
		return err
	}
	if !validation.IsValidEnrollmentYear(enrollmentYear) {
		return u.reject(FieldEnrollmentYear, apperrors.ErrOutOfRange, "Enrollment year should be a positive integer.")
	}

	u.programStudy = programStudy
	u.faculty = faculty
	u.enrollmentYear = enrollmentYear
	return nil
}

// SetSchoolAccount sets email, password and user name; each must be non-blank.
// Email format and password strength are not enforced here.
func (u *User) SetSchoolAccount(email, password, userName string) error {
	if err := u.requireNotBlank(
		requiredField{FieldEmail, "Email", email},
		requiredField{FieldPassword, "Password", password},
		requiredField{FieldUserName, "User name", userName},
	); err != nil {
		return err
	}

	u.email = email
	u.password = password
	u.userName = userName
	return nil
}

// SetGeneralInformation sets name, gender and student identifier number; each must be non-blank.
// The identifier's length and digits are only checked by UpdateProfile.
func (u *User) SetGeneralInformation(firstName, lastName, gender, studentIdentifierNumber string) error {
	if err := u.requireNotBlank(
		requiredField{FieldFirstName, "First name", firstName},
		requiredField{FieldLastName, "Last name", lastName},
		requiredField{FieldGender, "Gender", gender},
		requiredField{FieldStudentIdentifierNumber, "Student identifier number", studentIdentifierNumber},
	); err != nil {
		return err
	}

	u.firstName = firstName
	u.lastName = lastName
	u.gender = gender
	u.studentIdentifierNumber = studentIdentifierNumber
	return nil
}

// CalculateEnrollmentYear returns the current calendar year minus the enrollment year.
// The result is negative for a future enrollment year.
func (u *User) CalculateEnrollmentYear() int {
	return helpers.CurrentYear(u.clock) - u.enrollmentYear
}

// IsValidEmail reports whether email matches the school email grammar
func (u *User) IsValidEmail(email string) bool {
	return validation.IsValidEmail(email)
}

// IsStrongPassword reports whether password satisfies the strength rule
func (u *User) IsStrongPassword(password string) bool {
	return validation.IsStrongPassword(password)
}

// String describes the record without the password
func (u *User) String() string {
	return fmt.Sprintf("User{ID: %s, UserName: %s, StudentID: %s, Faculty: %s, EnrollmentYear: %d}",
		u.userID, u.userName, u.studentIdentifierNumber, u.faculty, u.enrollmentYear)
}
