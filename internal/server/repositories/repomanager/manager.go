package repomanager

import (
	"context"
	"database/sql"

	"github.com/shopkeeper/shopkeeper/internal/dbx"
	"github.com/shopkeeper/shopkeeper/internal/server/repositories/products"
	"github.com/shopkeeper/shopkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
}
