package services

import (
	"context"
	"fmt"
	"time"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
)

const pingTimeout = 3 * time.Second

type AppService struct {
	cache          ports.Pinger
	db             ports.Pinger
	userRepository user.Repository
	fileRepository file.Repository
}

func NewAppService(
	cache ports.Pinger,
	db ports.Pinger,
	userRepository user.Repository,
	fileRepository file.Repository,
) ports.AppService {
	return &AppService{
		cache:          cache,
		db:             db,
		userRepository: userRepository,
		fileRepository: fileRepository,
	}
}

func (as *AppService) Status(ctx context.Context) ports.Status {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return ports.Status{
		Cache: as.cache.Ping(ctx) == nil,
		DB:    as.db.Ping(ctx) == nil,
	}
}

func (as *AppService) Stats(ctx context.Context) (ports.Stats, error) {
	users, err := as.userRepository.CountUsers(ctx)
	if err != nil {
		return ports.Stats{}, fmt.Errorf("count users: %w: %w", ErrStorageUnavailable, err)
	}
	files, err := as.fileRepository.CountFiles(ctx)
	if err != nil {
		return ports.Stats{}, fmt.Errorf("count files: %w: %w", ErrStorageUnavailable, err)
	}

	return ports.Stats{Users: users, Files: files}, nil
}
