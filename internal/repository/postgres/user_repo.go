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

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a user by their UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := r.queries.GetUserByID(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// GetByAuth0ID retrieves a user by their Auth0 ID
func (r *UserRepository) GetByAuth0ID(ctx context.Context, auth0ID string) (*domain.User, error) {
	user, err := r.queries.GetUserByAuth0ID(ctx, auth0ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// CreateOrGetByAuth0ID creates a new user or returns the existing one (upsert on login)
func (r *UserRepository) CreateOrGetByAuth0ID(ctx context.Context, auth0ID, email string, name, pictureURL *string) (*domain.User, error) {
	user, err := r.queries.CreateOrGetUserByAuth0ID(ctx, sqlc.CreateOrGetUserByAuth0IDParams{
		Auth0ID:    auth0ID,
		Email:      email,
		Name:       stringPtrToPgText(name),
		PictureUrl: stringPtrToPgText(pictureURL),
	})
	if err != nil {
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// Helper functions

func sqlcUserToDomain(u sqlc.User) *domain.User {
	id, _ := uuid.FromBytes(u.ID.Bytes[:])
	return &domain.User{
		ID:         id,
		Auth0ID:    u.Auth0ID,
		Email:      u.Email,
		Name:       pgTextToStringPtr(u.Name),
		PictureURL: pgTextToStringPtr(u.PictureUrl),
		CreatedAt:  u.CreatedAt.Time,
		UpdatedAt:  u.UpdatedAt.Time,
	}
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
