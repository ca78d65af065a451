package auth

import (
	"context"

	"github.com/pkg/errors"
)

// Identity is the authenticated user a request acts on behalf of.
type Identity struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

func (i Identity) IsZero() bool {
	return i.UserID == 0
}

type ctxKey int

const identityKey ctxKey = iota + 1

var ErrNoIdentity = errors.New("no authenticated user")

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func GetIdentity(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.IsZero() {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}
