package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/testutil"
)

func TestCreateToken_Success(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	workspaceID := uuid.New()
	token, err := inviteService.CreateToken(context.Background(), workspaceID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(token) != 6 {
		t.Errorf("Expected 6-character token, got %q", token)
	}

	for _, r := range token {
		if !strings.ContainsRune(inviteTokenAlphabet, r) {
			t.Errorf("Token %q contains character outside alphabet: %c", token, r)
		}
	}

	if inviteRepo.ByWorkspace[workspaceID] != token {
		t.Error("Expected token to be persisted for the workspace")
	}
}

func TestResolveToken_Success(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	workspaceID := uuid.New()
	inviteRepo.AddInvite(workspaceID, "abc123")

	resolved, err := inviteService.ResolveToken(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resolved != workspaceID {
		t.Errorf("Expected workspace %s, got %s", workspaceID, resolved)
	}
}

func TestResolveToken_TrimsWhitespace(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	workspaceID := uuid.New()
	inviteRepo.AddInvite(workspaceID, "abc123")

	resolved, err := inviteService.ResolveToken(context.Background(), "  abc123  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resolved != workspaceID {
		t.Errorf("Expected workspace %s, got %s", workspaceID, resolved)
	}
}

func TestResolveToken_Empty(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	_, err := inviteService.ResolveToken(context.Background(), "   ")
	if err != domain.ErrInvalidInviteToken {
		t.Errorf("Expected ErrInvalidInviteToken, got %v", err)
	}
}

func TestResolveToken_Unknown(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	_, err := inviteService.ResolveToken(context.Background(), "zzzzzz")
	if err != domain.ErrInvalidInviteToken {
		t.Errorf("Expected ErrInvalidInviteToken, got %v", err)
	}
}

func TestResolveToken_StaysValidAfterResolve(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	workspaceID := uuid.New()
	inviteRepo.AddInvite(workspaceID, "abc123")

	for i := 0; i < 3; i++ {
		resolved, err := inviteService.ResolveToken(context.Background(), "abc123")
		if err != nil {
			t.Fatalf("Resolve %d: expected no error, got %v", i, err)
		}
		if resolved != workspaceID {
			t.Errorf("Resolve %d: expected workspace %s, got %s", i, workspaceID, resolved)
		}
	}
}

func TestTokenForWorkspace(t *testing.T) {
	inviteRepo := testutil.NewMockInviteRepository()
	inviteService := NewInviteService(inviteRepo)

	workspaceID := uuid.New()
	inviteRepo.AddInvite(workspaceID, "abc123")

	token, err := inviteService.TokenForWorkspace(context.Background(), workspaceID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if token != "abc123" {
		t.Errorf("Expected token abc123, got %s", token)
	}
}
