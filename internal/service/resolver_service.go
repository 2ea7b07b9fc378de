package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Outcome is the routing decision of a landing resolution
type Outcome string

const (
	// OutcomeCreateJoin routes the user to the create/join flow
	OutcomeCreateJoin Outcome = "create_join"
	// OutcomeDashboard presents the dashboard in its empty state (forced
	// redirect suppressed right after login/signup)
	OutcomeDashboard Outcome = "dashboard"
	// OutcomeWorkspace routes the user to a specific workspace
	OutcomeWorkspace Outcome = "workspace"
)

// Landing is the result of resolving an identity to a landing workspace
type Landing struct {
	Outcome     Outcome
	WorkspaceID uuid.UUID
	Memberships []domain.MembershipDetail
}

// ResolverService decides where an authenticated identity lands after login
type ResolverService struct {
	membershipRepo domain.MembershipRepository
}

// NewResolverService creates a new ResolverService
func NewResolverService(membershipRepo domain.MembershipRepository) *ResolverService {
	return &ResolverService{membershipRepo: membershipRepo}
}

// ResolveLanding computes the landing outcome for a user.
//
// An empty membership set routes to create/join, unless the one-shot
// suppression flag is set, in which case the dashboard is shown in its
// empty state instead. With memberships present, owner rows are ordered
// first (stable) and the remembered recent workspace wins over sort order
// when it is still in the set. The caller consumes the suppression flag on
// every call regardless of branch.
//
// A store failure is a resolution error, never an empty result.
func (s *ResolverService) ResolveLanding(ctx context.Context, userID, recentWorkspaceID uuid.UUID, skipCreateJoin bool) (*Landing, error) {
	memberships, err := s.membershipRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load memberships")
		return nil, fmt.Errorf("resolve landing: %w", err)
	}

	if len(memberships) == 0 {
		if skipCreateJoin {
			return &Landing{Outcome: OutcomeDashboard}, nil
		}
		return &Landing{Outcome: OutcomeCreateJoin}, nil
	}

	// Owner memberships first; relative order among equal roles preserved
	sort.SliceStable(memberships, func(i, j int) bool {
		return memberships[i].Role == domain.RoleOwner && memberships[j].Role != domain.RoleOwner
	})

	landingID := memberships[0].Workspace.ID
	if recentWorkspaceID != uuid.Nil {
		for _, m := range memberships {
			if m.Workspace.ID == recentWorkspaceID {
				landingID = recentWorkspaceID
				break
			}
		}
	}

	return &Landing{
		Outcome:     OutcomeWorkspace,
		WorkspaceID: landingID,
		Memberships: memberships,
	}, nil
}
