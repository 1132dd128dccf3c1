package handlers

import (
	stderrors "errors"
	"net/http"

	"savings-tracker/internal/dto"
	"savings-tracker/internal/errors"
	"savings-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
//
// Method: POST /register
// Success Response: 201 Created with the public user view
// Error Responses: 400 validation, 409 USER_002, 500 SYSTEM_002
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Token exchanges a username (or email) and password for a bearer token.
// Both JSON and form-encoded bodies are accepted.
//
// Method: POST /token
// Success Response: 200 OK {access_token, token_type, expires_at}
// Error Responses: 400 validation, 401 AUTH_001
func (h *AuthHandler) Token(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Login(c.Request().Context(), &req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			c.Response().Header().Set("WWW-Authenticate", "Bearer")
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout revokes the bearer token used for this request
//
// Method: POST /logout
// Authentication: Required
func (h *AuthHandler) Logout(c echo.Context) error {
	token := getAccessTokenFromContext(c)
	if token == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout successful"})
}

// Me returns the authenticated user's profile
//
// Method: GET /me
// Authentication: Required
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
