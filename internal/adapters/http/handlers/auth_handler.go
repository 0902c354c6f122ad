package handlers

import (
	"errors"
	"strings"

	"embox/internal/core/domain"
	"embox/internal/core/services"
	"embox/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents registration request body
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents login request body
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ForgotPasswordRequest represents forgot-password request body
type ForgotPasswordRequest struct {
	Username string `json:"username"`
}

// ResetPasswordRequest represents reset-password request body
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// Register handles user registration
// @Summary Register new staff user
// @Description Register a new staff user. Open for the first user only; once any user exists an admin token is required.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 403 {object} response.Body
// @Failure 409 {object} response.Body
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if err := h.requireAdminUnlessFirstUser(c); err != nil {
		return err
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password required")
	}

	input := &services.RegisterInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	user, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return response.FromError(c, err, "Failed to register user")
	}

	return response.Created(c, "User registered successfully", user)
}

// requireAdminUnlessFirstUser gates registration. Bootstrapping the
// very first user is open; after that an admin access token is
// required.
func (h *AuthHandler) requireAdminUnlessFirstUser(c *fiber.Ctx) error {
	count, err := h.authService.UserCount(c.Context())
	if err != nil {
		return response.FromError(c, err, "Failed to register user")
	}
	if count == 0 {
		return nil
	}

	authHeader := c.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "Access token required")
	}

	claims, err := h.authService.ValidateAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return response.Unauthorized(c, "Invalid access token")
	}
	if claims.Role != domain.RoleAdmin {
		return response.Forbidden(c, "Admins only")
	}
	return nil
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password required")
	}

	input := &services.LoginInput{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return response.FromError(c, err, "Failed to login")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}

// Me returns the authenticated user
// @Summary Current user
// @Description Returns the authenticated user profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.authService.GetUserByID(c.Context(), userID)
	if err != nil {
		return response.FromError(c, err, "Failed to load user")
	}

	return response.Success(c, "", user.ToResponse())
}

// ForgotPassword issues a password reset token
// @Summary Request password reset
// @Description Generate a single-use reset token with a 1h expiry
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ForgotPasswordRequest true "Username"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" {
		return response.BadRequest(c, "Username is required")
	}

	token, err := h.authService.ForgotPassword(c.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		// Do not reveal whether the username exists.
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.Success(c, "If the user exists, a reset token was issued", nil)
		}
		return response.FromError(c, err, "Failed to issue reset token")
	}

	// Token delivery (email, SMS) is an external concern; the API
	// returns it directly so the operator can forward it.
	return response.Success(c, "Reset token issued", fiber.Map{
		"reset_token": token,
	})
}

// ResetPassword sets a new password using a reset token
// @Summary Reset password
// @Description Verify the reset token and set a new password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} response.Body
// @Failure 400 {object} response.Body
// @Failure 401 {object} response.Body
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Token == "" || req.NewPassword == "" {
		return response.BadRequest(c, "Token and new password required")
	}

	if err := h.authService.ResetPassword(c.Context(), req.Token, req.NewPassword); err != nil {
		return response.FromError(c, err, "Failed to reset password")
	}

	return response.Success(c, "Password reset successfully", nil)
}
