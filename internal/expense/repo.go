package expense

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

// Insert stores an expense entry and returns the generated id.
func (r *Repository) Insert(ctx context.Context, exp *Expense) (int64, error) {
	var id int64
	err := r.Pool.QueryRow(
		ctx,
		`INSERT INTO expense (concept, amount, date, category_id, user_id)
		 VALUES ($1, $2, $3::date, $4, $5)
		 RETURNING expense_id`,
		exp.Concept,
		exp.Amount,
		exp.Date,
		exp.CategoryID,
		exp.UserID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListByUser returns the user's expenses, newest date first. An unknown user
// yields an empty slice, not an error.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT expense_id, concept, amount, to_char(date, 'YYYY-MM-DD'), category_id, user_id
		FROM expense
		WHERE user_id = $1
		ORDER BY date DESC, expense_id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		var exp Expense
		if err := rows.Scan(
			&exp.ExpenseID,
			&exp.Concept,
			&exp.Amount,
			&exp.Date,
			&exp.CategoryID,
			&exp.UserID,
		); err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	return out, rows.Err()
}

// Update replaces the four mutable fields. Ownership is never changed.
// A missing id reports 0 affected rows, not an error.
func (r *Repository) Update(ctx context.Context, id int64, concept string, amount int64, date string, categoryID int64) (int64, error) {
	ct, err := r.Pool.Exec(
		ctx,
		`UPDATE expense
		 SET concept = $2, amount = $3, date = $4::date, category_id = $5
		 WHERE expense_id = $1`,
		id, concept, amount, date, categoryID,
	)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

// Remove deletes an entry by id and reports how many rows were affected.
func (r *Repository) Remove(ctx context.Context, id int64) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM expense WHERE expense_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
