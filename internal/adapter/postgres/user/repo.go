// Package user implements the minimal User repository the hub needs:
// users are owned by the auth collaborator, so only creation (seeding) and
// lookup are provided.
package user

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/healthhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "email", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &domain.User{
		ID:        rw.ID,
		Name:      rw.Name,
		Email:     rw.Email,
		CreatedAt: rw.CreatedAt,
		UpdatedAt: rw.UpdatedAt,
	}, nil
}

// Create inserts a new user. Returns domain.ErrAlreadyExists on a duplicate email.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("id", "name", "email", "created_at", "updated_at").
		Values(u.ID, u.Name, u.Email, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}
