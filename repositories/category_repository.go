package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loja-virtual/models"
)

type CategoryRepository struct {
	db *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	query := `SELECT c.id, c.name, COUNT(p.id), c.created_at
	          FROM categories c LEFT JOIN products p ON p.category_id = c.id
	          GROUP BY c.id ORDER BY c.name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.ProductCount, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var cat models.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, id,
	).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, created_at`,
		category.Name,
	).Scan(&category.ID, &category.CreatedAt)
}

func (r *CategoryRepository) Update(ctx context.Context, category *models.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`,
		category.Name, category.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses to remove a category that still has products. The dependent
// check and the delete run in one transaction so the guard cannot race a
// concurrent insert.
func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var dependents int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id,
	).Scan(&dependents); err != nil {
		return err
	}
	if dependents > 0 {
		return ErrCategoryInUse
	}

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
