package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// WorkspaceService handles workspace create/join and owner-gated mutations
type WorkspaceService struct {
	workspaceRepo  domain.WorkspaceRepository
	membershipRepo domain.MembershipRepository
	inviteService  *InviteService
	publisher      websocket.EventPublisher
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(workspaceRepo domain.WorkspaceRepository, membershipRepo domain.MembershipRepository, inviteService *InviteService, publisher websocket.EventPublisher) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo:  workspaceRepo,
		membershipRepo: membershipRepo,
		inviteService:  inviteService,
		publisher:      publisher,
	}
}

// Create creates a workspace, its owner membership, and its invite token as
// three sequential inserts. There is no compensating rollback: a failure
// after the workspace insert leaves the workspace orphaned. Not idempotent.
func (s *WorkspaceService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxWorkspaceNameLength {
		return nil, domain.ErrNameTooLong
	}

	workspace, err := s.workspaceRepo.Create(ctx, &domain.Workspace{
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to create workspace")
		return nil, err
	}

	membership := &domain.Membership{
		WorkspaceID: workspace.ID,
		UserID:      ownerID,
		Role:        domain.RoleOwner,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		log.Error().Err(err).
			Str("workspace_id", workspace.ID.String()).
			Msg("Failed to create owner membership; workspace left orphaned")
		return nil, err
	}

	if _, err := s.inviteService.CreateToken(ctx, workspace.ID); err != nil {
		log.Error().Err(err).
			Str("workspace_id", workspace.ID.String()).
			Msg("Failed to create invite token; workspace has no invite")
		return nil, err
	}

	log.Info().
		Str("workspace_id", workspace.ID.String()).
		Str("owner_id", ownerID.String()).
		Msg("Workspace created")

	return workspace, nil
}

// Join resolves an invite token and creates a member membership. The
// resolve and insert are two separate store calls; the token stays valid
// after the join.
func (s *WorkspaceService) Join(ctx context.Context, userID uuid.UUID, token string) (uuid.UUID, error) {
	workspaceID, err := s.inviteService.ResolveToken(ctx, token)
	if err != nil {
		return uuid.Nil, err
	}

	membership := &domain.Membership{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        domain.RoleMember,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		if err != domain.ErrAlreadyMember {
			log.Error().Err(err).
				Str("workspace_id", workspaceID.String()).
				Str("user_id", userID.String()).
				Msg("Failed to create membership")
		}
		return uuid.Nil, err
	}

	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", userID.String()).
		Msg("User joined workspace")

	s.publisher.Publish(workspaceID, websocket.MemberJoined(membership))

	return workspaceID, nil
}

// Rename changes a workspace's name. Only the owner may rename.
func (s *WorkspaceService) Rename(ctx context.Context, workspaceID uuid.UUID, newName string, requesterID uuid.UUID) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return domain.ErrNameRequired
	}
	if len(newName) > domain.MaxWorkspaceNameLength {
		return domain.ErrNameTooLong
	}

	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return err
	}

	workspace, err := s.workspaceRepo.UpdateName(ctx, workspaceID, newName)
	if err != nil {
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to rename workspace")
		return err
	}

	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("name", newName).
		Msg("Workspace renamed")

	s.publisher.Publish(workspaceID, websocket.WorkspaceRenamed(workspace))

	return nil
}

// Delete removes a workspace after a typed-confirmation check: the
// confirmation name must exactly equal the workspace's current name
// (case-sensitive) before any delete is issued. Membership and invite rows
// cascade via the store's referential integrity.
func (s *WorkspaceService) Delete(ctx context.Context, workspaceID uuid.UUID, confirmationName string, requesterID uuid.UUID) error {
	workspace, err := s.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}

	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return err
	}

	if confirmationName != workspace.Name {
		return domain.ErrConfirmationMismatch
	}

	if err := s.workspaceRepo.Delete(ctx, workspaceID); err != nil {
		log.Error().Err(err).Str("workspace_id", workspaceID.String()).Msg("Failed to delete workspace")
		return err
	}

	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("requester_id", requesterID.String()).
		Msg("Workspace deleted")

	s.publisher.Publish(workspaceID, websocket.WorkspaceDeleted(workspace))

	return nil
}

// InviteToken returns the workspace's invite token to its owner
func (s *WorkspaceService) InviteToken(ctx context.Context, workspaceID, requesterID uuid.UUID) (string, error) {
	if err := s.requireOwner(ctx, workspaceID, requesterID); err != nil {
		return "", err
	}
	return s.inviteService.TokenForWorkspace(ctx, workspaceID)
}

// ListMemberships returns the user's memberships expanded with their workspaces
func (s *WorkspaceService) ListMemberships(ctx context.Context, userID uuid.UUID) ([]domain.MembershipDetail, error) {
	return s.membershipRepo.ListByUser(ctx, userID)
}

// Membership returns the requester's membership in a workspace
func (s *WorkspaceService) Membership(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error) {
	return s.membershipRepo.Get(ctx, workspaceID, userID)
}

// GetByID retrieves a workspace by ID
func (s *WorkspaceService) GetByID(ctx context.Context, workspaceID uuid.UUID) (*domain.Workspace, error) {
	return s.workspaceRepo.GetByID(ctx, workspaceID)
}

func (s *WorkspaceService) requireOwner(ctx context.Context, workspaceID, userID uuid.UUID) error {
	membership, err := s.membershipRepo.Get(ctx, workspaceID, userID)
	if err != nil {
		if err == domain.ErrMembershipNotFound {
			return domain.ErrForbidden
		}
		return err
	}
	if membership.Role != domain.RoleOwner {
		return domain.ErrForbidden
	}
	return nil
}
