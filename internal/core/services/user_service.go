package services

import (
	"context"
	"errors"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User service errors
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrOldPasswordWrong      = errors.New("old password is incorrect")
	ErrCannotDeleteSelf      = errors.New("cannot delete your own account")
)

// UserService handles user management business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateUserInput represents user update input; nil fields keep the stored
// value. A non-nil Password is re-validated against the policy and re-hashed.
type UpdateUserInput struct {
	Username    *string      `json:"username"`
	Email       *string      `json:"email"`
	Password    *string      `json:"password"`
	Role        *domain.Role `json:"role"`
	Firstname   *string      `json:"firstname"`
	Lastname    *string      `json:"lastname"`
	Salutation  *string      `json:"salutation"`
	Street      *string      `json:"street"`
	City        *string      `json:"city"`
	PostalCode  *int         `json:"postal_code"`
	HouseNumber *string      `json:"house_number"`
	CountryCode *string      `json:"country_code"`
	IsActive    *bool        `json:"is_active"`
}

// ChangePasswordInput represents change password input
type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// ListUsers lists users with pagination
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toUserResponses(users), total, nil
}

// GetUserByID gets a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// GetUserByUsername gets a user by username
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// GetUserByEmail gets a user by email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ListUsersByRole lists users with the given role
func (s *UserService) ListUsersByRole(ctx context.Context, role domain.Role) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListUsersByFirstname lists users with the given firstname
func (s *UserService) ListUsersByFirstname(ctx context.Context, firstname string) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListByFirstname(ctx, firstname)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListUsersByLastname lists users with the given lastname
func (s *UserService) ListUsersByLastname(ctx context.Context, lastname string) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListByLastname(ctx, lastname)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListUsersByCountry lists users with the given country code
func (s *UserService) ListUsersByCountry(ctx context.Context, countryCode string) ([]*models.UserResponse, error) {
	users, err := s.userRepo.ListByCountry(ctx, countryCode)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// UpdateUser updates the user identified by username
func (s *UserService) UpdateUser(ctx context.Context, username string, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		exists, err := s.userRepo.ExistsByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameAlreadyExists
		}
		user.Username = *input.Username
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}

	if input.Password != nil {
		if !password.Validate(*input.Password) {
			return nil, domain.ErrInvalidPassword
		}
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}

	if input.Firstname != nil {
		user.Firstname = *input.Firstname
	}
	if input.Lastname != nil {
		user.Lastname = *input.Lastname
	}
	if input.Salutation != nil {
		user.Salutation = *input.Salutation
	}
	if input.Street != nil {
		user.Street = *input.Street
	}
	if input.City != nil {
		user.City = *input.City
	}
	if input.PostalCode != nil {
		user.PostalCode = *input.PostalCode
	}
	if input.HouseNumber != nil {
		user.HouseNumber = *input.HouseNumber
	}
	if input.CountryCode != nil {
		user.CountryCode = *input.CountryCode
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

// DeleteUserByUsername deletes a user by username (soft delete)
func (s *UserService) DeleteUserByUsername(ctx context.Context, username string) error {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, user.ID)
}

// DeleteUser deletes a user by ID (soft delete); admins cannot delete
// their own account.
func (s *UserService) DeleteUser(ctx context.Context, id, adminID uuid.UUID) error {
	if id == adminID {
		return ErrCannotDeleteSelf
	}

	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepo.Delete(ctx, id)
}

// ChangePassword changes the user's password after verifying the old one
func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	if !password.Verify(input.OldPassword, user.Password) {
		return ErrOldPasswordWrong
	}

	if !password.Validate(input.NewPassword) {
		return domain.ErrInvalidPassword
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// SetProfilePicture stores the uploaded picture path on the user
func (s *UserService) SetProfilePicture(ctx context.Context, username, path string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	user.ProfilePicture = path
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.ToResponse(), nil
}

func toUserResponses(users []*models.User) []*models.UserResponse {
	responses := make([]*models.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses
}
