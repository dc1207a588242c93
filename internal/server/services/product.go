package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopkeeper/shopkeeper/internal/dbx"
	"github.com/shopkeeper/shopkeeper/internal/server/models"
	"github.com/shopkeeper/shopkeeper/internal/server/repositories/repomanager"
)

// ProductService exposes the catalog operations. They are thin pass-through
// persistence calls; all access control happens upstream in the HTTP layer.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

// AddBatch inserts all given products in one transaction: either the whole
// batch lands or none of it does.
func (s *ProductService) AddBatch(ctx context.Context, batch []*models.Product) ([]*models.Product, error) {
	result := make([]*models.Product, 0, len(batch))

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Products(tx)
		for _, p := range batch {
			created, err := repo.Create(ctx, p)
			if err != nil {
				return fmt.Errorf("error adding product %q: %w", p.Name, err)
			}
			result = append(result, created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Update applies a partial update and returns the updated product, or
// common.ErrNotFound if no such product exists.
func (s *ProductService) Update(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error) {
	return s.repomanager.Products(s.db).Update(ctx, id, upd)
}

// List returns all products.
func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).List(ctx)
}
