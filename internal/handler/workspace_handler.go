package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/middleware"
	"github.com/relayy/relayy-backend/internal/routing"
	"github.com/relayy/relayy-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// WorkspaceHandler handles workspace-related HTTP requests
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
	resolverService  *service.ResolverService
	cookieDomain     string
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService, resolverService *service.ResolverService, cookieDomain string) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		resolverService:  resolverService,
		cookieDomain:     cookieDomain,
	}
}

// WorkspaceResponse represents a workspace in API responses
type WorkspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// MembershipResponse represents an expanded membership in API responses
type MembershipResponse struct {
	Role        string            `json:"role"`
	Workspace   WorkspaceResponse `json:"workspace"`
	InviteToken string            `json:"inviteToken,omitempty"`
}

// LandingResponse represents the outcome of a landing resolution
type LandingResponse struct {
	Outcome     string               `json:"outcome"`
	WorkspaceID string               `json:"workspaceId,omitempty"`
	Workspaces  []MembershipResponse `json:"workspaces"`
}

// Landing resolves where the authenticated user should land. The one-shot
// redirect suppression cookie is consumed on every call regardless of the
// outcome.
// GET /workspaces/landing
func (h *WorkspaceHandler) Landing(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	prefs := routing.PreferencesFromRequest(c)
	if prefs.SkipCreateJoin {
		routing.ClearSkipRedirect(c, h.cookieDomain)
	}

	landing, err := h.resolverService.ResolveLanding(c.Request().Context(), userID, prefs.RecentWorkspaceID, prefs.SkipCreateJoin)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to resolve landing")
		return NewInternalError(c, "Failed to resolve landing workspace")
	}

	response := LandingResponse{
		Outcome:    string(landing.Outcome),
		Workspaces: membershipsToResponse(landing.Memberships),
	}
	if landing.Outcome == service.OutcomeWorkspace {
		response.WorkspaceID = landing.WorkspaceID.String()
	}

	return c.JSON(http.StatusOK, response)
}

// List returns the user's memberships expanded with their workspaces
// GET /workspaces
func (h *WorkspaceHandler) List(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	memberships, err := h.workspaceService.ListMemberships(c.Request().Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to list memberships")
		return NewInternalError(c, "Failed to load workspaces")
	}

	return c.JSON(http.StatusOK, membershipsToResponse(memberships))
}

// CreateWorkspaceRequest is the request body for creating a workspace
type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

// Create creates a workspace with its owner membership and invite token
// POST /workspaces
func (h *WorkspaceHandler) Create(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspace, err := h.workspaceService.Create(c.Request().Context(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Workspace name is required", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Workspace name is too long", []ValidationError{
				{Field: "name", Message: "Name exceeds maximum length"},
			})
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to create workspace")
			return NewInternalError(c, "Failed to create workspace")
		}
	}

	routing.SetRecentWorkspace(c, workspace.ID, h.cookieDomain)

	return c.JSON(http.StatusCreated, workspaceToResponse(workspace))
}

// JoinWorkspaceRequest is the request body for joining via invite token
type JoinWorkspaceRequest struct {
	Token string `json:"token"`
}

// JoinWorkspaceResponse is the response after a successful join
type JoinWorkspaceResponse struct {
	WorkspaceID string `json:"workspaceId"`
}

// Join resolves an invite token and adds the user as a member
// POST /workspaces/join
func (h *WorkspaceHandler) Join(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	var req JoinWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	workspaceID, err := h.workspaceService.Join(c.Request().Context(), userID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInviteToken):
			return NewNotFoundError(c, "Invalid invite token")
		case errors.Is(err, domain.ErrAlreadyMember):
			return NewConflictError(c, "Already a member of this workspace")
		default:
			log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to join workspace")
			return NewInternalError(c, "Failed to join workspace")
		}
	}

	routing.SetRecentWorkspace(c, workspaceID, h.cookieDomain)

	return c.JSON(http.StatusOK, JoinWorkspaceResponse{WorkspaceID: workspaceID.String()})
}

// WorkspaceDetailResponse is a workspace with the requester's role
type WorkspaceDetailResponse struct {
	WorkspaceResponse
	Role string `json:"role"`
}

// Get returns a workspace the user is a member of and records it as the
// most recently visited one
// GET /workspaces/:id
func (h *WorkspaceHandler) Get(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Workspace not found")
	}

	membership, err := h.workspaceService.Membership(c.Request().Context(), workspaceID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return NewNotFoundError(c, "Workspace not found")
		}
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to check membership")
		return NewInternalError(c, "Failed to load workspace")
	}

	workspace, err := h.workspaceService.GetByID(c.Request().Context(), workspaceID)
	if err != nil {
		if errors.Is(err, domain.ErrWorkspaceNotFound) {
			return NewNotFoundError(c, "Workspace not found")
		}
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to get workspace")
		return NewInternalError(c, "Failed to load workspace")
	}

	routing.SetRecentWorkspace(c, workspaceID, h.cookieDomain)

	return c.JSON(http.StatusOK, WorkspaceDetailResponse{
		WorkspaceResponse: workspaceToResponse(workspace),
		Role:              string(membership.Role),
	})
}

// InviteResponse carries a workspace's invite token
type InviteResponse struct {
	Token string `json:"token"`
}

// GetInvite returns the workspace's invite token to its owner
// GET /workspaces/:id/invite
func (h *WorkspaceHandler) GetInvite(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Workspace not found")
	}

	token, err := h.workspaceService.InviteToken(c.Request().Context(), workspaceID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can view the invite token")
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		default:
			log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to get invite token")
			return NewInternalError(c, "Failed to load invite token")
		}
	}

	return c.JSON(http.StatusOK, InviteResponse{Token: token})
}

// RenameWorkspaceRequest is the request body for renaming a workspace
type RenameWorkspaceRequest struct {
	Name string `json:"name"`
}

// Rename changes a workspace's name. Owner only.
// PATCH /workspaces/:id
func (h *WorkspaceHandler) Rename(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Workspace not found")
	}

	var req RenameWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	err = h.workspaceService.Rename(c.Request().Context(), workspaceID, req.Name, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNameRequired):
			return NewValidationError(c, "Workspace name is required", []ValidationError{
				{Field: "name", Message: "Name must not be empty"},
			})
		case errors.Is(err, domain.ErrNameTooLong):
			return NewValidationError(c, "Workspace name is too long", []ValidationError{
				{Field: "name", Message: "Name exceeds maximum length"},
			})
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can rename this workspace")
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		default:
			log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to rename workspace")
			return NewInternalError(c, "Failed to rename workspace")
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteWorkspaceRequest carries the typed confirmation for deletion
type DeleteWorkspaceRequest struct {
	ConfirmName string `json:"confirmName"`
}

// Delete removes a workspace after the typed-confirmation check. Owner only.
// DELETE /workspaces/:id
func (h *WorkspaceHandler) Delete(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		return NewUnauthorizedError(c, "Authentication required")
	}

	workspaceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewNotFoundError(c, "Workspace not found")
	}

	var req DeleteWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	err = h.workspaceService.Delete(c.Request().Context(), workspaceID, req.ConfirmName, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConfirmationMismatch):
			return NewPreconditionFailedError(c, "Workspace name does not match")
		case errors.Is(err, domain.ErrForbidden):
			return NewForbiddenError(c, "Only the owner can delete this workspace")
		case errors.Is(err, domain.ErrWorkspaceNotFound):
			return NewNotFoundError(c, "Workspace not found")
		default:
			log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to delete workspace")
			return NewInternalError(c, "Failed to delete workspace")
		}
	}

	return c.NoContent(http.StatusNoContent)
}

// Helper functions

func workspaceToResponse(w *domain.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:        w.ID.String(),
		Name:      w.Name,
		OwnerID:   w.OwnerID.String(),
		CreatedAt: w.CreatedAt,
	}
}

func membershipsToResponse(memberships []domain.MembershipDetail) []MembershipResponse {
	result := make([]MembershipResponse, len(memberships))
	for i, m := range memberships {
		result[i] = MembershipResponse{
			Role:        string(m.Role),
			Workspace:   workspaceToResponse(&m.Workspace),
			InviteToken: m.InviteToken,
		}
	}
	return result
}
