package models

import (
	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
	"github.com/nandaardian19/studentprofile/internal/pkg/validation"
)

// ProfileUpdate carries every field UpdateProfile writes
type ProfileUpdate struct {
	FirstName               string
	LastName                string
	Gender                  string
	StudentIdentifierNumber string
	ProgramStudy            string
	Faculty                 string
	EnrollmentYear          int
	Email                   string
	Password                string
	UserName                string
}

// ProfileStatus summarises a successful UpdateProfile.
// Email and password quality are reported here, never enforced.
type ProfileStatus struct {
	EmailStatus    EmailStatus
	PasswordStatus PasswordStatus
	YearsEnrolled  int
}

// UpdateProfile replaces the whole profile.
//
// The student identifier must be exactly 10 digits; that is checked first and nothing
// is written when it fails. The grouped setters then run in order (school identifier,
// school account, general information). There is no rollback: if a later setter fails,
// fields written by earlier ones stay written.
func (u *User) UpdateProfile(p ProfileUpdate) (ProfileStatus, error) {
	if !validation.IsValidStudentIdentifier(p.StudentIdentifierNumber) {
		return ProfileStatus{}, u.reject(FieldStudentIdentifierNumber, apperrors.ErrInvalidStudentID,
			"Student identifier number should be exactly 10 digits.")
	}

	emailValid := u.IsValidEmail(p.Email)
	passwordStrong := u.IsStrongPassword(p.Password)

	if err := u.SetSchoolIdentifier(p.ProgramStudy, p.Faculty, p.EnrollmentYear); err != nil {
		return ProfileStatus{}, err
	}
	if err := u.SetSchoolAccount(p.Email, p.Password, p.UserName); err != nil {
		return ProfileStatus{}, err
	}
	if err := u.SetGeneralInformation(p.FirstName, p.LastName, p.Gender, p.StudentIdentifierNumber); err != nil {
		return ProfileStatus{}, err
	}

	return ProfileStatus{
		EmailStatus:    EmailStatusOf(emailValid),
		PasswordStatus: PasswordStatusOf(passwordStrong),
		YearsEnrolled:  u.CalculateEnrollmentYear(),
	}, nil
}
