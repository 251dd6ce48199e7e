package handlers

import (
	"errors"

	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/core/services"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// EmailLoginRequest represents the login-by-email request body
type EmailLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body services.RegisterInput true "Registration data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "Username, email and password are required")
	}

	result, err := h.authService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.BadRequest(c, "Password must be at least 8 characters and contain upper case, lower case, a digit and a special character")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Conflict(c, "A user with this username or email already exists")
		default:
			return response.InternalServerError(c, "Failed to register user")
		}
	}

	return response.Created(c, "User registered successfully", result)
}

// Login handles username/password login
// @Summary Login with username
// @Description Authenticate with username and password and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	result, err := h.authService.Login(c.Context(), &services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.loginError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

// LoginWithEmail handles email/password login
// @Summary Login with email
// @Description Authenticate with email and password and receive an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body EmailLoginRequest true "Login credentials"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Failure 404 {object} response.Body
// @Router /api/v1/auth/token/email [post]
func (h *AuthHandler) LoginWithEmail(c *fiber.Ctx) error {
	var req EmailLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return response.BadRequest(c, "Email and password are required")
	}

	result, err := h.authService.LoginWithEmail(c.Context(), &services.LoginInput{
		Username: req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.loginError(c, err)
	}

	return response.Success(c, "Login successful", result)
}

func (h *AuthHandler) loginError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "No user found for the given identifier")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Invalid credentials")
	case errors.Is(err, services.ErrUserInactive):
		return response.Forbidden(c, "This account has been deactivated")
	default:
		return response.InternalServerError(c, "Failed to log in")
	}
}
