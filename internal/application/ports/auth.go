package ports

import (
	"context"

	"files-manager-api/internal/domain/user"
)

type Auth interface {
	// ResolveUser maps a session token to its user. A token that resolves to
	// nothing yields services.ErrUnauthorized.
	ResolveUser(ctx context.Context, token string) (*user.User, error)
	Connect(ctx context.Context, email, password string) (string, error)
	Disconnect(ctx context.Context, token string) error
}
