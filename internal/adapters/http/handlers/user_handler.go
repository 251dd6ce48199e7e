package handlers

import (
	"errors"

	"phonestore-api/internal/adapters/http/middleware"
	"phonestore-api/internal/core/domain"
	"phonestore-api/internal/core/services"
	"phonestore-api/internal/pkg/pagination"
	"phonestore-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserHandler handles user management requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles listing all users
// @Summary List users
// @Description List all users with pagination (admin only)
// @Tags Users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Failure 403 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	users, total, err := h.userService.ListUsers(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", pagination.NewResponse(users, params, total))
}

// GetUser handles fetching a user by ID
// @Summary Get user by ID
// @Description Get a single user by ID (admin only)
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", user)
}

// GetUserByUsername handles fetching a user by username
// @Summary Get user by username
// @Description Get a single user by username (owner or admin)
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/username/{username} [get]
func (h *UserHandler) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	if !middleware.Principal(c).CanModify(username) {
		return response.Forbidden(c, "You can only access your own account")
	}

	user, err := h.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", user)
}

// GetUserByEmail handles fetching a user by email
// @Summary Get user by email
// @Description Get a single user by email (admin only)
// @Tags Users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *fiber.Ctx) error {
	user, err := h.userService.GetUserByEmail(c.Context(), c.Params("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get user")
	}

	return response.Success(c, "User retrieved successfully", user)
}

// SearchUsers handles searching users by a single field
// @Summary Search users
// @Description Search users by role, firstname, lastname or country (admin only)
// @Tags Users
// @Produce json
// @Param role query string false "Role (USER or ADMIN)"
// @Param firstname query string false "Firstname"
// @Param lastname query string false "Lastname"
// @Param country query string false "Country code"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/search [get]
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	switch {
	case c.Query("role") != "":
		role := domain.Role(c.Query("role"))
		if !role.Valid() {
			return response.BadRequest(c, "Invalid role, must be USER or ADMIN")
		}
		result, err := h.userService.ListUsersByRole(c.Context(), role)
		if err != nil {
			return response.InternalServerError(c, "Failed to search users")
		}
		return response.Success(c, "Users retrieved successfully", result)
	case c.Query("firstname") != "":
		result, err := h.userService.ListUsersByFirstname(c.Context(), c.Query("firstname"))
		if err != nil {
			return response.InternalServerError(c, "Failed to search users")
		}
		return response.Success(c, "Users retrieved successfully", result)
	case c.Query("lastname") != "":
		result, err := h.userService.ListUsersByLastname(c.Context(), c.Query("lastname"))
		if err != nil {
			return response.InternalServerError(c, "Failed to search users")
		}
		return response.Success(c, "Users retrieved successfully", result)
	case c.Query("country") != "":
		result, err := h.userService.ListUsersByCountry(c.Context(), c.Query("country"))
		if err != nil {
			return response.InternalServerError(c, "Failed to search users")
		}
		return response.Success(c, "Users retrieved successfully", result)
	default:
		return response.BadRequest(c, "One of role, firstname, lastname or country is required")
	}
}

// UpdateUser handles updating a user by username
// @Summary Update user
// @Description Update a user by username (owner or admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Failure 409 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/username/{username} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	username := c.Params("username")
	principal := middleware.Principal(c)

	if !principal.CanModify(username) {
		return response.Forbidden(c, "You can only update your own account")
	}

	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Role and activation changes are reserved for admins.
	if !principal.Role.IsAdmin() {
		input.Role = nil
		input.IsActive = nil
	}

	user, err := h.userService.UpdateUser(c.Context(), username, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, services.ErrUsernameAlreadyExists):
			return response.Conflict(c, "Username is already taken")
		case errors.Is(err, services.ErrEmailAlreadyExists):
			return response.Conflict(c, "Email is already taken")
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.BadRequest(c, "Password must be at least 8 characters and contain upper case, lower case, a digit and a special character")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Role must be USER or ADMIN")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}

	return response.Success(c, "User updated successfully", user)
}

// DeleteUserByUsername handles deleting a user by username
// @Summary Delete user by username
// @Description Delete a user by username (owner or admin)
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/username/{username} [delete]
func (h *UserHandler) DeleteUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	if !middleware.Principal(c).CanModify(username) {
		return response.Forbidden(c, "You can only delete your own account")
	}

	if err := h.userService.DeleteUserByUsername(c.Context(), username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.Success(c, "User deleted successfully", nil)
}

// DeleteUser handles deleting a user by ID
// @Summary Delete user by ID
// @Description Delete a user by ID (admin only, cannot delete own account)
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	principal := middleware.Principal(c)

	if err := h.userService.DeleteUser(c.Context(), id, principal.UserID); err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			return response.BadRequest(c, "You cannot delete your own account")
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to delete user")
		}
	}

	return response.Success(c, "User deleted successfully", nil)
}

// GetProfile handles fetching the authenticated user's profile
// @Summary Get own profile
// @Description Get the profile of the authenticated user
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/profile [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	user, err := h.userService.GetUserByID(c.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return response.Success(c, "Profile retrieved successfully", user)
}

// UpdateProfile handles updating the authenticated user's profile
// @Summary Update own profile
// @Description Update the profile of the authenticated user
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body services.UpdateUserInput true "Fields to update"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 409 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if !principal.Role.IsAdmin() {
		input.Role = nil
		input.IsActive = nil
	}

	user, err := h.userService.UpdateUser(c.Context(), principal.Username, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameAlreadyExists):
			return response.Conflict(c, "Username is already taken")
		case errors.Is(err, services.ErrEmailAlreadyExists):
			return response.Conflict(c, "Email is already taken")
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.BadRequest(c, "Password must be at least 8 characters and contain upper case, lower case, a digit and a special character")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Role must be USER or ADMIN")
		default:
			return response.InternalServerError(c, "Failed to update profile")
		}
	}

	return response.Success(c, "Profile updated successfully", user)
}

// ChangePassword handles changing the authenticated user's password
// @Summary Change password
// @Description Change the password of the authenticated user
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body services.ChangePasswordInput true "Old and new password"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/profile/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	var input services.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.OldPassword == "" || input.NewPassword == "" {
		return response.BadRequest(c, "Old and new password are required")
	}

	if err := h.userService.ChangePassword(c.Context(), principal.UserID, &input); err != nil {
		switch {
		case errors.Is(err, services.ErrOldPasswordWrong):
			return response.Unauthorized(c, "Old password is incorrect")
		case errors.Is(err, domain.ErrInvalidPassword):
			return response.BadRequest(c, "Password must be at least 8 characters and contain upper case, lower case, a digit and a special character")
		default:
			return response.InternalServerError(c, "Failed to change password")
		}
	}

	return response.Success(c, "Password changed successfully", nil)
}

// UploadUserPicture handles uploading a profile picture for a named user
// @Summary Upload user picture
// @Description Upload a profile picture for a user by username (owner or admin)
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param username path string true "Username"
// @Param picture formData file true "Profile picture"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 404 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/users/username/{username}/picture [post]
func (h *UserHandler) UploadUserPicture(c *fiber.Ctx) error {
	username := c.Params("username")

	if !middleware.Principal(c).CanModify(username) {
		return response.Forbidden(c, "You can only change your own picture")
	}

	file, err := c.FormFile("picture")
	if err != nil {
		return response.BadRequest(c, "Picture file is required")
	}

	path, err := saveUpload(c, file, "profiles")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.SetProfilePicture(c.Context(), username, path)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to save profile picture")
	}

	return response.Success(c, "Profile picture uploaded successfully", user)
}

// UploadProfilePicture handles uploading a profile picture
// @Summary Upload profile picture
// @Description Upload a profile picture for the authenticated user
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Profile picture"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Security BearerAuth
// @Router /api/v1/profile/picture [post]
func (h *UserHandler) UploadProfilePicture(c *fiber.Ctx) error {
	principal := middleware.Principal(c)

	file, err := c.FormFile("picture")
	if err != nil {
		return response.BadRequest(c, "Picture file is required")
	}

	path, err := saveUpload(c, file, "profiles")
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.SetProfilePicture(c.Context(), principal.Username, path)
	if err != nil {
		return response.InternalServerError(c, "Failed to save profile picture")
	}

	return response.Success(c, "Profile picture uploaded successfully", user)
}
