package category

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

// AddCategory inserts a category and returns the generated id.
func (r *Repository) AddCategory(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING category_id`,
		name,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetCategories lists every category.
func (r *Repository) GetCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.Pool.Query(
		ctx,
		`SELECT category_id, name, created_at FROM categories ORDER BY category_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.CategoryID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}
