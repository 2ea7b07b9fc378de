package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	// inviteTokenLength is the length of generated invite tokens. Tokens are
	// low-value, short-lived-by-obscurity secrets; 6 base36 characters give
	// ~31 bits of entropy, enough to make collision within one workspace's
	// lifetime negligible.
	inviteTokenLength = 6
	// inviteTokenAlphabet is the character set for invite tokens
	inviteTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// InviteService generates and resolves workspace invite tokens. One token
// is created per workspace at creation time; tokens are never invalidated
// after a successful join (persistent invite link until the workspace is
// deleted).
type InviteService struct {
	inviteRepo domain.InviteRepository
}

// NewInviteService creates a new InviteService
func NewInviteService(inviteRepo domain.InviteRepository) *InviteService {
	return &InviteService{inviteRepo: inviteRepo}
}

// CreateToken generates an opaque invite token for a workspace and persists it
func (s *InviteService) CreateToken(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	token, err := generateInviteToken()
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate invite token")
		return "", fmt.Errorf("failed to generate invite token: %w", err)
	}

	if err := s.inviteRepo.Create(ctx, workspaceID, token); err != nil {
		return "", err
	}

	log.Info().Str("workspace_id", workspaceID.String()).Msg("Invite token created")
	return token, nil
}

// ResolveToken looks up the workspace an invite token belongs to. Empty or
// whitespace-only tokens are rejected before querying the store. The caller
// is responsible for creating the membership row afterwards.
func (s *InviteService) ResolveToken(ctx context.Context, token string) (uuid.UUID, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.Nil, domain.ErrInvalidInviteToken
	}
	return s.inviteRepo.GetWorkspaceByToken(ctx, token)
}

// TokenForWorkspace returns the active invite token of a workspace
func (s *InviteService) TokenForWorkspace(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	return s.inviteRepo.GetTokenByWorkspace(ctx, workspaceID)
}

// generateInviteToken produces a short random token from crypto/rand
func generateInviteToken() (string, error) {
	buf := make([]byte, inviteTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, inviteTokenLength)
	for i, b := range buf {
		out[i] = inviteTokenAlphabet[int(b)%len(inviteTokenAlphabet)]
	}
	return string(out), nil
}
