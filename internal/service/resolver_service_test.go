package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/testutil"
)

func detailFor(role domain.Role, workspaceID uuid.UUID, name string) domain.MembershipDetail {
	return domain.MembershipDetail{
		Role: role,
		Workspace: domain.Workspace{
			ID:   workspaceID,
			Name: name,
		},
	}
}

func TestResolveLanding_NoMemberships(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	landing, err := resolver.ResolveLanding(context.Background(), uuid.New(), uuid.Nil, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.Outcome != OutcomeCreateJoin {
		t.Errorf("Expected outcome %s, got %s", OutcomeCreateJoin, landing.Outcome)
	}

	if landing.WorkspaceID != uuid.Nil {
		t.Errorf("Expected no landing workspace, got %s", landing.WorkspaceID)
	}
}

func TestResolveLanding_NoMembershipsWithSkip(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	landing, err := resolver.ResolveLanding(context.Background(), uuid.New(), uuid.Nil, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.Outcome != OutcomeDashboard {
		t.Errorf("Expected outcome %s, got %s", OutcomeDashboard, landing.Outcome)
	}
}

func TestResolveLanding_SkipIgnoredWithMemberships(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	userID := uuid.New()
	workspaceID := uuid.New()
	membershipRepo.AddDetail(userID, detailFor(domain.RoleOwner, workspaceID, "Acme"))

	landing, err := resolver.ResolveLanding(context.Background(), userID, uuid.Nil, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.Outcome != OutcomeWorkspace {
		t.Errorf("Expected outcome %s, got %s", OutcomeWorkspace, landing.Outcome)
	}

	if landing.WorkspaceID != workspaceID {
		t.Errorf("Expected landing workspace %s, got %s", workspaceID, landing.WorkspaceID)
	}
}

func TestResolveLanding_OwnerOrderedFirst(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	userID := uuid.New()
	memberWS := uuid.New()
	ownerWS := uuid.New()
	// Member row joined earlier, owner row created later
	membershipRepo.AddDetail(userID, detailFor(domain.RoleMember, memberWS, "Their Team"))
	membershipRepo.AddDetail(userID, detailFor(domain.RoleOwner, ownerWS, "My Team"))

	landing, err := resolver.ResolveLanding(context.Background(), userID, uuid.Nil, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.WorkspaceID != ownerWS {
		t.Errorf("Expected owned workspace %s to land first, got %s", ownerWS, landing.WorkspaceID)
	}

	if len(landing.Memberships) != 2 {
		t.Fatalf("Expected 2 memberships, got %d", len(landing.Memberships))
	}

	if landing.Memberships[0].Workspace.ID != ownerWS {
		t.Errorf("Expected owner membership first, got %s", landing.Memberships[0].Workspace.ID)
	}
}

func TestResolveLanding_StableOrderWithinRole(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	membershipRepo.AddDetail(userID, detailFor(domain.RoleMember, first, "First Joined"))
	membershipRepo.AddDetail(userID, detailFor(domain.RoleMember, second, "Second Joined"))

	landing, err := resolver.ResolveLanding(context.Background(), userID, uuid.Nil, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.Memberships[0].Workspace.ID != first {
		t.Errorf("Expected join order preserved, got %s first", landing.Memberships[0].Workspace.ID)
	}

	if landing.WorkspaceID != first {
		t.Errorf("Expected first joined workspace %s, got %s", first, landing.WorkspaceID)
	}
}

func TestResolveLanding_RecentWorkspaceWins(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	userID := uuid.New()
	ownerWS := uuid.New()
	recentWS := uuid.New()
	membershipRepo.AddDetail(userID, detailFor(domain.RoleOwner, ownerWS, "My Team"))
	membershipRepo.AddDetail(userID, detailFor(domain.RoleMember, recentWS, "Their Team"))

	landing, err := resolver.ResolveLanding(context.Background(), userID, recentWS, false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.WorkspaceID != recentWS {
		t.Errorf("Expected recent workspace %s, got %s", recentWS, landing.WorkspaceID)
	}
}

func TestResolveLanding_StaleRecentIgnored(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	resolver := NewResolverService(membershipRepo)

	userID := uuid.New()
	ownerWS := uuid.New()
	membershipRepo.AddDetail(userID, detailFor(domain.RoleOwner, ownerWS, "My Team"))

	// Recent cookie points at a workspace the user no longer belongs to
	landing, err := resolver.ResolveLanding(context.Background(), userID, uuid.New(), false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if landing.WorkspaceID != ownerWS {
		t.Errorf("Expected fallback to owned workspace %s, got %s", ownerWS, landing.WorkspaceID)
	}
}

func TestResolveLanding_StoreFailure(t *testing.T) {
	membershipRepo := testutil.NewMockMembershipRepository()
	storeErr := errors.New("connection refused")
	membershipRepo.ListFn = func(userID uuid.UUID) ([]domain.MembershipDetail, error) {
		return nil, storeErr
	}
	resolver := NewResolverService(membershipRepo)

	landing, err := resolver.ResolveLanding(context.Background(), uuid.New(), uuid.Nil, false)
	if err == nil {
		t.Fatal("Expected error on store failure, got nil")
	}

	if !errors.Is(err, storeErr) {
		t.Errorf("Expected wrapped store error, got %v", err)
	}

	if landing != nil {
		t.Errorf("Expected nil landing on failure, got %+v", landing)
	}
}
