package products

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopkeeper/shopkeeper/internal/common"
	"github.com/shopkeeper/shopkeeper/internal/dbx"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO products (id, name, count, image_url)
		 VALUES ($1, $2, $3, $4)
		 `

	if _, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Count, product.ImageURL); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error) {

	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if upd.Name != nil {
		args = append(args, *upd.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Count != nil {
		args = append(args, *upd.Count)
		set = append(set, fmt.Sprintf("count = $%d", len(args)))
	}
	if upd.ImageURL != nil {
		args = append(args, *upd.ImageURL)
		set = append(set, fmt.Sprintf("image_url = $%d", len(args)))
	}

	args = append(args, id)

	query := fmt.Sprintf(
		`SELECT id, name, count, image_url FROM products WHERE id = $%d`, len(args))
	if len(set) > 0 {
		query = fmt.Sprintf(
			`UPDATE products SET %s WHERE id = $%d RETURNING id, name, count, image_url`,
			strings.Join(set, ", "), len(args))
	}

	product := &models.Product{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&product.ID, &product.Name, &product.Count, &product.ImageURL)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return product, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Product, error) {
	query :=
		`SELECT id, name, count, image_url FROM products
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Count, &product.ImageURL); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
