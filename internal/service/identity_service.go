package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// IdentityService resolves authenticated identities from Auth0 claims.
// Unlike a conventional signup flow it never provisions a workspace: a
// fresh identity has zero memberships and is routed to create/join.
type IdentityService struct {
	userRepo domain.UserRepository
}

// NewIdentityService creates a new IdentityService
func NewIdentityService(userRepo domain.UserRepository) *IdentityService {
	return &IdentityService{userRepo: userRepo}
}

// EnsureUser provisions the user row on first login and returns it on
// subsequent ones (upsert keyed by Auth0 ID)
func (s *IdentityService) EnsureUser(ctx context.Context, auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	user, err := s.userRepo.CreateOrGetByAuth0ID(ctx, auth0ID, email, name, pictureURL)
	if err != nil {
		log.Error().Err(err).Str("auth0_id", auth0ID).Msg("Failed to create or get user")
		return nil, err
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID
func (s *IdentityService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByAuth0ID retrieves a user by their Auth0 ID
func (s *IdentityService) GetUserByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	return s.userRepo.GetByAuth0ID(ctx, auth0ID)
}
