// Package products contains the catalog persistence boundary.
package products

import (
	"context"

	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a single product and returns it with its id assigned.
	Create(ctx context.Context, product *models.Product) (*models.Product, error)

	// Update applies the non-nil fields of upd to the product with the
	// given id and returns the updated record, or common.ErrNotFound.
	Update(ctx context.Context, id string, upd *models.ProductUpdate) (*models.Product, error)

	// List returns all products.
	List(ctx context.Context) ([]*models.Product, error)
}
