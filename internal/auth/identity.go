package auth

import (
	"context"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"
)

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Role   entities.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == entities.RoleAdmin
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func ExtractIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
