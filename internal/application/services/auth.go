package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/domain/user"
)

const authKeyPrefix = "auth_"

type AuthService struct {
	sessions       ports.SessionCache
	userRepository user.Repository
	sessionTTL     time.Duration
}

func NewAuthService(
	sessions ports.SessionCache,
	userRepository user.Repository,
	sessionTTL time.Duration,
) ports.Auth {
	return &AuthService{
		sessions:       sessions,
		userRepository: userRepository,
		sessionTTL:     sessionTTL,
	}
}

func authKey(token string) string { return authKeyPrefix + token }

// ResolveUser: cache "auth_<token>" -> user id -> user record.
// Unreachable backends are ErrStorageUnavailable, never ErrUnauthorized.
func (as *AuthService) ResolveUser(ctx context.Context, token string) (*user.User, error) {
	userID, ok, err := as.sessions.Get(ctx, authKey(token))
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w: %w", ErrStorageUnavailable, err)
	}
	if !ok {
		return nil, ErrUnauthorized
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := as.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w: %w", ErrStorageUnavailable, err)
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	return u, nil
}

func (as *AuthService) Connect(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("user lookup: %w: %w", ErrStorageUnavailable, err)
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err = as.sessions.Set(ctx, authKey(token), u.ID.String(), as.sessionTTL); err != nil {
		return "", fmt.Errorf("session store: %w: %w", ErrStorageUnavailable, err)
	}

	return token, nil
}

func (as *AuthService) Disconnect(ctx context.Context, token string) error {
	if _, err := as.ResolveUser(ctx, token); err != nil {
		return err
	}

	if err := as.sessions.Del(ctx, authKey(token)); err != nil {
		return fmt.Errorf("session delete: %w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
