package repo

import (
	"context"
	"log/slog"

	"blogapi/src/core/domain"
	"blogapi/src/infra/db"
)

// CategoryRepository reads the fixed category set from Postgres.
type CategoryRepository struct {
	base
}

// NewCategoryRepository constructs a category repository backed by Postgres.
func NewCategoryRepository(pg *db.Postgres, log *slog.Logger) *CategoryRepository {
	return &CategoryRepository{base{pool: pg.Pool, log: log}}
}

func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1)`
	var exists bool
	if err := r.db(ctx).QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
		SELECT category_id, name
		FROM categories
		ORDER BY category_id
	`
	rows, err := r.db(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
