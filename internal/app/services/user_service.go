package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nandaardian19/studentprofile/internal/app/models"
	"github.com/nandaardian19/studentprofile/internal/app/models/dto"
	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
	"github.com/nandaardian19/studentprofile/internal/pkg/auth"
	"github.com/nandaardian19/studentprofile/internal/pkg/helpers"
	"github.com/nandaardian19/studentprofile/internal/pkg/validation"
)

// UserService defines the interface for profile operations
type UserService interface {
	NewUser() *models.User
	UpdateProfile(user *models.User, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	CheckProfile(req *dto.UpdateProfileRequest) (*dto.CheckProfileResponse, error)
	Export(user *models.User) (*dto.UserResponse, error)
}

// UserServiceOptions holds the tunables of a UserService
type UserServiceOptions struct {
	// IncludePasswordDigest adds a bcrypt digest of the password to exports
	IncludePasswordDigest bool
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	validator *validation.StructValidator
	hasher    *auth.Hasher
	clock     helpers.Clock
	opts      UserServiceOptions
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	validator *validation.StructValidator,
	hasher *auth.Hasher,
	clock helpers.Clock,
	opts UserServiceOptions,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		validator: validator,
		hasher:    hasher,
		clock:     clock,
		opts:      opts,
		logger:    logger,
	}
}

// NewUser creates an empty record sharing the service's clock and logger
func (s *userServiceImpl) NewUser() *models.User {
	user := models.NewUser(
		models.WithLogger(s.logger),
		models.WithClock(s.clock),
	)
	s.logger.Debug().Str("userID", user.ID()).Msg("Created user record")
	return user
}

// UpdateProfile applies req to user. On failure the record may be partially updated.
func (s *userServiceImpl) UpdateProfile(user *models.User, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	if user == nil {
		return nil, apperrors.NewBadRequestError("user record is required")
	}
	if req == nil {
		return nil, apperrors.NewBadRequestError("profile payload is required")
	}

	status, err := user.UpdateProfile(req.ToModel())
	if err != nil {
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	s.logger.Info().
		Str("userID", user.ID()).
		Str("emailStatus", string(status.EmailStatus)).
		Str("passwordStatus", string(status.PasswordStatus)).
		Int("yearsEnrolled", status.YearsEnrolled).
		Msg("Profile updated")

	exported, err := s.Export(user)
	if err != nil {
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Success: true,
		User:    exported,
		Status:  dto.NewProfileStatusResponse(status),
	}, nil
}

// CheckProfile reports every problem in req without touching any record
func (s *userServiceImpl) CheckProfile(req *dto.UpdateProfileRequest) (*dto.CheckProfileResponse, error) {
	if req == nil {
		return nil, apperrors.NewBadRequestError("profile payload is required")
	}

	fieldErrs, err := s.validator.Validate(req)
	if err != nil {
		return nil, fmt.Errorf("error validating profile: %w", err)
	}

	report := dto.HandleValidationError(fieldErrs)
	for _, e := range report.Errors {
		s.logger.Warn().Str("field", e.Field).Str("severity", string(e.Severity)).Msg(e.Message)
	}

	return &dto.CheckProfileResponse{
		Valid:  !report.HasErrors(),
		Errors: report.Errors,
	}, nil
}

// Export returns the user's public fields, with a password digest when configured.
// Passwords longer than bcrypt accepts are exported without a digest.
func (s *userServiceImpl) Export(user *models.User) (*dto.UserResponse, error) {
	if user == nil {
		return nil, apperrors.NewBadRequestError("user record is required")
	}

	resp := dto.NewUserResponse(user)
	if s.opts.IncludePasswordDigest && user.Password() != "" {
		digest, err := s.hasher.HashPassword(user.Password())
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			s.logger.Warn().Str("userID", user.ID()).Msg("Password exceeds 72 bytes, exporting without digest")
			return resp, nil
		}
		if err != nil {
			s.logger.Error().Err(err).Str("userID", user.ID()).Msg("Failed to hash password for export")
			return nil, err
		}
		resp.PasswordDigest = digest
	}
	return resp, nil
}
