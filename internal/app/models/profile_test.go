package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
)

func validUpdate() ProfileUpdate {
	return ProfileUpdate{
		FirstName:               "Nanda",
		LastName:                "Ardian",
		Gender:                  "male",
		StudentIdentifierNumber: "2020104001",
		ProgramStudy:            "Informatics",
		Faculty:                 "Engineering",
		EnrollmentYear:          2020,
		Email:                   "nanda.ardian@student.uni.ac.id",
		Password:                "Abcdefg1@",
		UserName:                "nanda",
	}
}

func TestUpdateProfileSuccess(t *testing.T) {
	u, buf := newTestUser(t, 2024)

	status, err := u.UpdateProfile(validUpdate())
	require.NoError(t, err)
	assert.Equal(t, ProfileStatus{EmailStatus: EmailValid, PasswordStatus: PasswordStrong, YearsEnrolled: 4}, status)
	assert.Zero(t, buf.Len())

	assert.Equal(t, "Nanda", u.FirstName())
	assert.Equal(t, "Ardian", u.LastName())
	assert.Equal(t, "male", u.Gender())
	assert.Equal(t, "2020104001", u.StudentIdentifierNumber())
	assert.Equal(t, "Informatics", u.ProgramStudy())
	assert.Equal(t, "Engineering", u.Faculty())
	assert.Equal(t, 2020, u.EnrollmentYear())
	assert.Equal(t, "nanda.ardian@student.uni.ac.id", u.Email())
	assert.Equal(t, "Abcdefg1@", u.Password(), "password is stored as supplied")
	assert.Equal(t, "nanda", u.UserName())
}

func TestUpdateProfileReportsWeakInputsWithoutBlocking(t *testing.T) {
	u, _ := newTestUser(t, 2024)
	p := validUpdate()
	p.Email = "not-an-email"
	p.Password = "abcdefg1"

	status, err := u.UpdateProfile(p)
	require.NoError(t, err)
	assert.Equal(t, EmailInvalid, status.EmailStatus)
	assert.Equal(t, PasswordWeak, status.PasswordStatus)
	assert.Equal(t, "not-an-email", u.Email())
	assert.Equal(t, "abcdefg1", u.Password())
}

func TestUpdateProfileRejectsIdentifier(t *testing.T) {
	for _, id := range []string{"12345", "", "12345678901", "12345abcde", "          "} {
		t.Run(id, func(t *testing.T) {
			u, buf := newTestUser(t, 2024)
			p := validUpdate()
			p.StudentIdentifierNumber = id

			status, err := u.UpdateProfile(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidStudentID)
			assert.Equal(t, ProfileStatus{}, status)

			ve, ok := apperrors.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, FieldStudentIdentifierNumber, ve.Field)

			entries := logEntries(t, buf)
			require.Len(t, entries, 1)
			assert.Equal(t, err.Error(), entries[0]["message"])

			assert.Empty(t, u.ProgramStudy(), "nothing written")
			assert.Empty(t, u.Email())
			assert.Empty(t, u.FirstName())
		})
	}
}

func TestUpdateProfileIdentifierCheckedFirst(t *testing.T) {
	u, _ := newTestUser(t, 2024)
	_, err := u.UpdateProfile(ProfileUpdate{StudentIdentifierNumber: "12345"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidStudentID)
}

func TestUpdateProfilePartialWriteOnLaterFailure(t *testing.T) {
	u, _ := newTestUser(t, 2024)
	p := validUpdate()
	p.UserName = " "

	_, err := u.UpdateProfile(p)
	require.Error(t, err)
	ve, ok := apperrors.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, FieldUserName, ve.Field)

	// school identifier was already written
	assert.Equal(t, "Informatics", u.ProgramStudy())
	assert.Equal(t, 2020, u.EnrollmentYear())
	assert.Empty(t, u.Email())
	assert.Empty(t, u.FirstName())
}

func TestUpdateProfileFailsOnEnrollmentYear(t *testing.T) {
	u, _ := newTestUser(t, 2024)
	p := validUpdate()
	p.EnrollmentYear = 0

	_, err := u.UpdateProfile(p)
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
	assert.Empty(t, u.ProgramStudy())
}

func TestUpdateProfileLastWriteWins(t *testing.T) {
	u, _ := newTestUser(t, 2024)
	first := validUpdate()
	second := validUpdate()
	second.FirstName = "Rina"
	second.StudentIdentifierNumber = "2022104099"
	second.EnrollmentYear = 2022
	second.Email = "rina@uni.ac.id"

	_, err := u.UpdateProfile(first)
	require.NoError(t, err)
	status, err := u.UpdateProfile(second)
	require.NoError(t, err)
	assert.Equal(t, 2, status.YearsEnrolled)

	again, _ := newTestUser(t, 2024)
	_, err = again.UpdateProfile(second)
	require.NoError(t, err)

	assert.Equal(t, again.FirstName(), u.FirstName())
	assert.Equal(t, again.StudentIdentifierNumber(), u.StudentIdentifierNumber())
	assert.Equal(t, again.EnrollmentYear(), u.EnrollmentYear())
	assert.Equal(t, again.Email(), u.Email())
}
