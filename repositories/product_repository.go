package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"loja-virtual/models"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `p.id, p.name, p.price, COALESCE(p.description, ''), p.category_id,
	COALESCE(c.name, ''), COALESCE(p.image_filename, ''), p.image_updated_at, p.created_at, p.updated_at`

func scanProduct(row pgx.Row, p *models.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.CategoryID,
		&p.CategoryName, &p.ImageFilename, &p.ImageUpdatedAt, &p.CreatedAt, &p.UpdatedAt)
}

// GetAll lists products, newest first, optionally restricted to one category.
func (r *ProductRepository) GetAll(ctx context.Context, categoryID *int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products p LEFT JOIN categories c ON c.id = p.category_id`
	args := []interface{}{}
	if categoryID != nil {
		query += ` WHERE p.category_id = $1`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY p.created_at DESC, p.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products p LEFT JOIN categories c ON c.id = p.category_id
	          WHERE p.id = $1`

	var p models.Product
	if err := scanProduct(r.db.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, price, description, category_id, image_filename, image_updated_at, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7, $7)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		product.Name, product.Price, product.Description, product.CategoryID,
		product.ImageFilename, product.ImageUpdatedAt, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET name = $1, price = $2, description = NULLIF($3, ''),
	          category_id = $4, image_filename = NULLIF($5, ''), image_updated_at = $6,
	          updated_at = $7 WHERE id = $8`
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Price, product.Description, product.CategoryID,
		product.ImageFilename, product.ImageUpdatedAt, time.Now(), product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the product inside a transaction so a failure mid-request
// never leaves a partially applied change.
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}
