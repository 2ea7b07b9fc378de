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

// WorkspaceRepository implements domain.WorkspaceRepository using PostgreSQL
type WorkspaceRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a workspace by its ID
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	workspace, err := r.queries.GetWorkspaceByID(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return sqlcWorkspaceToDomain(workspace), nil
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) (*domain.Workspace, error) {
	created, err := r.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		Name:    workspace.Name,
		OwnerID: pgtype.UUID{Bytes: workspace.OwnerID, Valid: true},
	})
	if err != nil {
		return nil, err
	}
	return sqlcWorkspaceToDomain(created), nil
}

// UpdateName updates a workspace's name
func (r *WorkspaceRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Workspace, error) {
	updated, err := r.queries.UpdateWorkspaceName(ctx, sqlc.UpdateWorkspaceNameParams{
		ID:   pgtype.UUID{Bytes: id, Valid: true},
		Name: name,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return sqlcWorkspaceToDomain(updated), nil
}

// Delete deletes a workspace. Membership and invite rows cascade via the
// schema's foreign keys.
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.queries.DeleteWorkspace(ctx, pgtype.UUID{Bytes: id, Valid: true})
}

// Helper functions

func sqlcWorkspaceToDomain(w sqlc.Workspace) *domain.Workspace {
	id, _ := uuid.FromBytes(w.ID.Bytes[:])
	ownerID, _ := uuid.FromBytes(w.OwnerID.Bytes[:])
	return &domain.Workspace{
		ID:        id,
		Name:      w.Name,
		OwnerID:   ownerID,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
}
