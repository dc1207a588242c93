// Package users contains the account persistence boundary.
package users

import (
	"context"

	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. A normalized-email collision yields
	// common.ErrDuplicateAccount.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the account with the given normalized email,
	// including the password hash, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account by id without the password hash,
	// or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List returns all accounts without password hashes.
	List(ctx context.Context) ([]*models.User, error)
}
