package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is a user's role within a workspace
type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Workspace represents a top-level collaboration container. OwnerID is set
// once at creation and never changes; there is no ownership transfer.
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Membership links a user to a workspace with a role. Exactly one owner
// membership exists per workspace, created together with the workspace.
type Membership struct {
	WorkspaceID uuid.UUID `json:"workspaceId"`
	UserID      uuid.UUID `json:"userId"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MembershipDetail is the typed projection for the landing query: a
// membership expanded with its workspace and, for owner rows, the
// workspace's active invite token. InviteToken is empty for member rows.
type MembershipDetail struct {
	Role        Role      `json:"role"`
	Workspace   Workspace `json:"workspace"`
	InviteToken string    `json:"inviteToken,omitempty"`
}

// WorkspaceRepository defines the interface for workspace persistence operations
type WorkspaceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	Create(ctx context.Context, workspace *Workspace) (*Workspace, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MembershipRepository defines the interface for membership persistence operations
type MembershipRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]MembershipDetail, error)
	Get(ctx context.Context, workspaceID, userID uuid.UUID) (*Membership, error)
	Create(ctx context.Context, membership *Membership) error
}

// InviteRepository defines the interface for invite token persistence operations
type InviteRepository interface {
	Create(ctx context.Context, workspaceID uuid.UUID, token string) error
	GetWorkspaceByToken(ctx context.Context, token string) (uuid.UUID, error)
	GetTokenByWorkspace(ctx context.Context, workspaceID uuid.UUID) (string, error)
}
