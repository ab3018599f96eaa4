package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"files-manager-api/internal/application/ports"
	domain "files-manager-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, rejected(MsgMissingEmail)
	}
	if password == "" {
		return nil, rejected(MsgMissingPassword)
	}

	existing, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w: %w", ErrStorageUnavailable, err)
	}
	if existing != nil {
		return nil, rejected(MsgUserAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := us.userRepository.CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// lost a race against a concurrent signup
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, rejected(MsgUserAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %w: %w", ErrStorageUnavailable, err)
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return u, nil
}

// normalizeEmail composes and case-folds an address so that visually equal
// spellings map to one account.
func normalizeEmail(email string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(email)))
}
