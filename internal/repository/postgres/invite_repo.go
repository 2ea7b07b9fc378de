package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/relayy/relayy-backend/db/sqlc"
	"github.com/relayy/relayy-backend/internal/domain"
)

// InviteRepository implements domain.InviteRepository using PostgreSQL
type InviteRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewInviteRepository creates a new InviteRepository
func NewInviteRepository(pool *pgxpool.Pool) *InviteRepository {
	return &InviteRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create persists an invite token for a workspace
func (r *InviteRepository) Create(ctx context.Context, workspaceID uuid.UUID, token string) error {
	_, err := r.queries.CreateWorkspaceInvite(ctx, sqlc.CreateWorkspaceInviteParams{
		WorkspaceID: pgtype.UUID{Bytes: workspaceID, Valid: true},
		Token:       token,
	})
	return err
}

// GetWorkspaceByToken resolves an invite token to its workspace ID
func (r *InviteRepository) GetWorkspaceByToken(ctx context.Context, token string) (uuid.UUID, error) {
	invite, err := r.queries.GetInviteByToken(ctx, token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, domain.ErrInvalidInviteToken
		}
		return uuid.Nil, err
	}
	workspaceID, _ := uuid.FromBytes(invite.WorkspaceID.Bytes[:])
	return workspaceID, nil
}

// GetTokenByWorkspace retrieves the active invite token of a workspace
func (r *InviteRepository) GetTokenByWorkspace(ctx context.Context, workspaceID uuid.UUID) (string, error) {
	invite, err := r.queries.GetInviteByWorkspace(ctx, pgtype.UUID{Bytes: workspaceID, Valid: true})
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", domain.ErrWorkspaceNotFound
		}
		return "", err
	}
	return invite.Token, nil
}
