package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/relayy/relayy-backend/internal/middleware"
	"github.com/relayy/relayy-backend/internal/routing"
	"github.com/relayy/relayy-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	identityService *service.IdentityService
	cookieDomain    string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(identityService *service.IdentityService, cookieDomain string) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		cookieDomain:    cookieDomain,
	}
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       *string `json:"name"`
	PictureURL *string `json:"pictureUrl"`
}

// AuthCallbackResponse represents the response from the auth callback
type AuthCallbackResponse struct {
	User UserResponse `json:"user"`
}

// Callback handles the Auth0 callback after successful authentication.
// Provisions the user row on first login and arms the one-shot redirect
// suppression so the next dashboard load does not force-navigate to the
// create/join flow.
// POST /auth/callback
func (h *AuthHandler) Callback(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		log.Error().Msg("No Auth0 ID in context - middleware may not be configured")
		return NewUnauthorizedError(c, "Authentication required")
	}

	customClaims := middleware.GetCustomClaims(c)
	var email, name, picture string
	if customClaims != nil {
		email = customClaims.Email
		name = customClaims.Name
		picture = customClaims.Picture
	}

	// Email is required for user creation
	if email == "" {
		log.Error().Str("auth0_id", auth0ID).Msg("No email in JWT claims")
		return NewValidationError(c, "Email is required for authentication", []ValidationError{
			{Field: "email", Message: "Email claim is missing from token"},
		})
	}

	var namePtr, picturePtr *string
	if name != "" {
		namePtr = &name
	}
	if picture != "" {
		picturePtr = &picture
	}

	user, err := h.identityService.EnsureUser(c.Request().Context(), auth0ID, email, namePtr, picturePtr)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to authenticate user")
		return NewInternalError(c, "Failed to authenticate user")
	}

	routing.SetSkipRedirect(c, h.cookieDomain)

	return c.JSON(http.StatusOK, AuthCallbackResponse{
		User: UserResponse{
			ID:         user.ID.String(),
			Email:      user.Email,
			Name:       user.Name,
			PictureURL: user.PictureURL,
		},
	})
}

// Me returns the current authenticated user's information
// GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	user, err := h.identityService.GetUserByAuth0ID(c.Request().Context(), auth0ID)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to get user")
		return NewNotFoundError(c, "User not found")
	}

	return c.JSON(http.StatusOK, UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: user.PictureURL,
	})
}

// LogoutResponse represents the response from logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// Logout handles user logout. The session-scoped suppression flag dies with
// the session; the recent-workspace preference deliberately survives so the
// next login lands on the same workspace.
// POST /auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	auth0ID := middleware.GetAuth0ID(c)
	if auth0ID == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	routing.ClearSkipRedirect(c, h.cookieDomain)

	// Log the logout event (useful for audit)
	log.Info().Str("auth0_id", auth0ID).Msg("User logged out")

	// Return success - Auth0 handles actual session termination
	return c.JSON(http.StatusOK, LogoutResponse{
		Message: "Logged out successfully",
	})
}
