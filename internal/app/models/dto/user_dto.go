package dto

import "github.com/nandaardian19/studentprofile/internal/app/models"

// UpdateProfileRequest represents a full profile payload.
// The validate tags drive CheckProfile; UpdateProfile applies the record's own rules.
type UpdateProfileRequest struct {
	FirstName               string `json:"firstName" yaml:"firstName" validate:"notblank"`
	LastName                string `json:"lastName" yaml:"lastName" validate:"notblank"`
	Gender                  string `json:"gender" yaml:"gender" validate:"notblank"`
	StudentIdentifierNumber string `json:"studentIdentifierNumber" yaml:"studentIdentifierNumber" validate:"student_identifier"`
	ProgramStudy            string `json:"programStudy" yaml:"programStudy" validate:"notblank"`
	Faculty                 string `json:"faculty" yaml:"faculty" validate:"notblank"`
	EnrollmentYear          int    `json:"enrollmentYear" yaml:"enrollmentYear" validate:"enrollment_year"`
	Email                   string `json:"email" yaml:"email" validate:"notblank,school_email"`
	Password                string `json:"password" yaml:"password" validate:"notblank,strong_password"`
	UserName                string `json:"userName" yaml:"userName" validate:"notblank"`
}

// ToModel converts the request into the record's update payload
func (r *UpdateProfileRequest) ToModel() models.ProfileUpdate {
	return models.ProfileUpdate{
		FirstName:               r.FirstName,
		LastName:                r.LastName,
		Gender:                  r.Gender,
		StudentIdentifierNumber: r.StudentIdentifierNumber,
		ProgramStudy:            r.ProgramStudy,
		Faculty:                 r.Faculty,
		EnrollmentYear:          r.EnrollmentYear,
		Email:                   r.Email,
		Password:                r.Password,
		UserName:                r.UserName,
	}
}

// UserResponse represents an exported profile. The password itself is never exported.
type UserResponse struct {
	ID                      string `json:"id"`
	FirstName               string `json:"firstName"`
	LastName                string `json:"lastName"`
	Gender                  string `json:"gender"`
	StudentIdentifierNumber string `json:"studentIdentifierNumber"`
	ProgramStudy            string `json:"programStudy"`
	Faculty                 string `json:"faculty"`
	EnrollmentYear          int    `json:"enrollmentYear"`
	Email                   string `json:"email"`
	UserName                string `json:"userName"`
	PasswordDigest          string `json:"passwordDigest,omitempty"`
}

// NewUserResponse copies the record's public fields
func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:                      u.ID(),
		FirstName:               u.FirstName(),
		LastName:                u.LastName(),
		Gender:                  u.Gender(),
		StudentIdentifierNumber: u.StudentIdentifierNumber(),
		ProgramStudy:            u.ProgramStudy(),
		Faculty:                 u.Faculty(),
		EnrollmentYear:          u.EnrollmentYear(),
		Email:                   u.Email(),
		UserName:                u.UserName(),
	}
}

// ProfileStatusResponse mirrors models.ProfileStatus
type ProfileStatusResponse struct {
	EmailStatus    models.EmailStatus    `json:"emailStatus" example:"VALID"`
	PasswordStatus models.PasswordStatus `json:"passwordStatus" example:"STRONG"`
	YearsEnrolled  int                   `json:"yearsEnrolled" example:"4"`
}

// NewProfileStatusResponse converts a ProfileStatus
func NewProfileStatusResponse(s models.ProfileStatus) ProfileStatusResponse {
	return ProfileStatusResponse{
		EmailStatus:    s.EmailStatus,
		PasswordStatus: s.PasswordStatus,
		YearsEnrolled:  s.YearsEnrolled,
	}
}

// UpdateProfileResponse is returned after a successful profile update
type UpdateProfileResponse struct {
	Success bool                  `json:"success"`
	User    *UserResponse         `json:"user"`
	Status  ProfileStatusResponse `json:"status"`
}

// CheckProfileResponse lists every problem found in a payload without applying it.
// Valid is false only when an ERROR-severity problem exists; email and password
// quality problems are reported as WARNING.
type CheckProfileResponse struct {
	Valid  bool          `json:"valid"`
	Errors []ErrorDetail `json:"errors"`
}
