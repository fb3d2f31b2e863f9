package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicateEmail is returned when an insert hits the unique constraint on
// users.email. The pre-insert exists check can race with a concurrent
// registration, so the constraint is the real backstop.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// FindByEmail returns the full record for an email, hash included, or nil
// when no such user exists.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.Pool.QueryRow(
		ctx,
		`SELECT user_id, name, email, avatar, password, created_at
		 FROM users
		 WHERE email = $1`,
		email,
	).Scan(&u.UserID, &u.Name, &u.Email, &u.Avatar, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AddUser inserts a new user and returns the generated id.
func (r *Repository) AddUser(ctx context.Context, name, email, avatar, passwordHash string) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, avatar, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id`,
		name, email, avatar, passwordHash,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return id, nil
}

// GetUser returns the client-facing partial record, or nil when absent.
func (r *Repository) GetUser(ctx context.Context, email string) (*Profile, error) {
	var p Profile
	err := r.Pool.QueryRow(
		ctx,
		`SELECT user_id, name, email, avatar FROM users WHERE email = $1`,
		email,
	).Scan(&p.UserID, &p.Name, &p.Email, &p.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetUserByID returns the partial record for an id, or nil when absent.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*Profile, error) {
	var p Profile
	err := r.Pool.QueryRow(
		ctx,
		`SELECT user_id, name, email, avatar FROM users WHERE user_id = $1`,
		id,
	).Scan(&p.UserID, &p.Name, &p.Email, &p.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteUserByID removes a user and reports how many rows were affected.
func (r *Repository) DeleteUserByID(ctx context.Context, id int64) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
