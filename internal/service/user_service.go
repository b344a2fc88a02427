package service

import (
	"context"

	"blogsphere/internal/models"
	"blogsphere/internal/repository"
	"blogsphere/internal/validation"
)

// UserService implements profile reads and partial profile updates.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ProfilePatch carries a partial profile update; only non-nil fields are applied.
type ProfilePatch struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

// GetProfile returns the caller's own profile. The password hash never
// leaves the model layer (json:"-").
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile applies the supplied fields to the caller's profile,
// re-checking username/email uniqueness before writing.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if err := validation.ValidateUsername(*patch.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		other, err := s.userRepo.GetByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, models.NewConflictError("Username already in use")
		}
		user.Username = *patch.Username
	}
	if patch.Email != nil && *patch.Email != user.Email {
		if err := validation.ValidateEmail(*patch.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		other, err := s.userRepo.GetByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != userID {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = *patch.Email
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
