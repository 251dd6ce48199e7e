package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"phonestore-api/internal/adapters/persistence/models"
	"phonestore-api/internal/adapters/persistence/repositories"
	"phonestore-api/internal/config"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/pkg/jwt"
	"phonestore-api/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrUserInactive = errors.New("user account is inactive")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Firstname   string `json:"firstname"`
	Lastname    string `json:"lastname"`
	Salutation  string `json:"salutation"`
	Street      string `json:"street"`
	City        string `json:"city"`
	PostalCode  int    `json:"postal_code"`
	HouseNumber string `json:"house_number"`
	CountryCode string `json:"country_code"`
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *models.UserResponse `json:"user"`
	AccessToken string               `json:"access_token"`
}

// Register registers a new user with role USER
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResponse, error) {
	// 1. Enforce password policy
	if !password.Validate(input.Password) {
		return nil, domain.ErrInvalidPassword
	}

	// 2. Check username/email uniqueness
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	// 3. Hash password
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Username:    strings.TrimSpace(input.Username),
		Email:       strings.TrimSpace(input.Email),
		Password:    hashedPassword,
		Role:        domain.RoleUser,
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Salutation:  input.Salutation,
		Street:      input.Street,
		City:        input.City,
		PostalCode:  input.PostalCode,
		HouseNumber: input.HouseNumber,
		CountryCode: input.CountryCode,
		IsActive:    true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 5. Issue token
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("User registered: %s", user.Username)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// Login authenticates a user by username and password.
// Returns domain.ErrUserNotFound when no such username exists and
// domain.ErrInvalidCredentials when the password does not match.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	// 1. Find user by username (exact match)
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	// 2. Check if user is active
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 3. Verify password (bcrypt compares in constant time)
	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Issue token
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("User logged in: %s", user.Username)

	return &AuthResponse{
		User:        user.ToResponse(),
		AccessToken: token,
	}, nil
}

// LoginWithEmail authenticates by email instead of username. The email is
// resolved to a username first; when no record matches the email the input
// is passed to Login unchanged, so the not-found path behaves exactly like
// a username login. The fallback is deliberately lenient.
func (s *AuthService) LoginWithEmail(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Username)
	if err == nil {
		input = &LoginInput{
			Username: user.Username,
			Password: input.Password,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Login(ctx, input)
}

// issueToken signs an access token for the user
func (s *AuthService) issueToken(user *models.User) (string, error) {
	return jwt.Issue(
		user.ID,
		user.Username,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenHours,
	)
}
