package httpapi

import (
	"context"

	"github.com/shopkeeper/shopkeeper/internal/server/models"
)

type ctxKey string

const accountKey ctxKey = "account"

func withAccount(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, accountKey, user)
}

// AccountFromContext returns the authenticated account attached by the
// token gate, if any.
func AccountFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(accountKey).(*models.User)
	return user, ok
}
