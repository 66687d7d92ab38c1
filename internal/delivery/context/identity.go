package context

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// WithIdentity returns a new context carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := value[*entity.Identity](ctx, identityKey)

	return identity, ok && identity != nil
}

// ViewerID returns the caller's account id, or uuid.Nil for anonymous requests.
func ViewerID(ctx context.Context) uuid.UUID {
	if identity, ok := IdentityFromContext(ctx); ok {
		return identity.AccountID
	}

	return uuid.Nil
}
