package ports

import (
	"context"

	"files-manager-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, email, password string) (*user.User, error)
}
