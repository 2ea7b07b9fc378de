package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/relayy/relayy-backend/db/sqlc"
	"github.com/relayy/relayy-backend/internal/domain"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// MembershipRepository implements domain.MembershipRepository using PostgreSQL
type MembershipRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepository {
	return &MembershipRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// ListByUser retrieves all memberships of a user, each expanded with its
// workspace and, for owner rows, the workspace's invite token
func (r *MembershipRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MembershipDetail, error) {
	rows, err := r.queries.ListMembershipsByUser(ctx, pgtype.UUID{Bytes: userID, Valid: true})
	if err != nil {
		return nil, err
	}
	result := make([]domain.MembershipDetail, len(rows))
	for i, row := range rows {
		result[i] = sqlcMembershipRowToDetail(row)
	}
	return result, nil
}

// Get retrieves a single membership
func (r *MembershipRepository) Get(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error) {
	member, err := r.queries.GetWorkspaceMember(ctx, sqlc.GetWorkspaceMemberParams{
		WorkspaceID: pgtype.UUID{Bytes: workspaceID, Valid: true},
		UserID:      pgtype.UUID{Bytes: userID, Valid: true},
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}
	return sqlcMemberToDomain(member), nil
}

// Create creates a new membership row
func (r *MembershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	created, err := r.queries.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		WorkspaceID: pgtype.UUID{Bytes: membership.WorkspaceID, Valid: true},
		UserID:      pgtype.UUID{Bytes: membership.UserID, Valid: true},
		Role:        string(membership.Role),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyMember
		}
		return err
	}
	membership.CreatedAt = created.CreatedAt.Time
	return nil
}

// Helper functions

func sqlcMemberToDomain(m sqlc.WorkspaceMember) *domain.Membership {
	workspaceID, _ := uuid.FromBytes(m.WorkspaceID.Bytes[:])
	userID, _ := uuid.FromBytes(m.UserID.Bytes[:])
	return &domain.Membership{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        domain.Role(m.Role),
		CreatedAt:   m.CreatedAt.Time,
	}
}

func sqlcMembershipRowToDetail(row sqlc.ListMembershipsByUserRow) domain.MembershipDetail {
	workspaceID, _ := uuid.FromBytes(row.WorkspaceID.Bytes[:])
	ownerID, _ := uuid.FromBytes(row.OwnerID.Bytes[:])
	return domain.MembershipDetail{
		Role: domain.Role(row.Role),
		Workspace: domain.Workspace{
			ID:        workspaceID,
			Name:      row.WorkspaceName,
			OwnerID:   ownerID,
			CreatedAt: row.WorkspaceCreatedAt.Time,
			UpdatedAt: row.WorkspaceUpdatedAt.Time,
		},
		InviteToken: row.InviteToken,
	}
}
