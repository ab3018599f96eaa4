package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"files-manager-api/internal/infrastructure/db/postgres"
)

// Store is a key/value table with per-entry expiry.
type Store struct {
	db postgres.DB
}

func NewStore(db postgres.DB) *Store {
	return &Store{db: db}
}

// Lookup returns a live entry together with the moment it stops being valid.
func (s *Store) Lookup(ctx context.Context, key string) (string, time.Time, bool, error) {
	var (
		value     string
		expiresAt time.Time
	)
	if err := s.db.QueryRow(ctx, SelectEntry, key).Scan(&value, &expiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, false, nil
		}
		return "", time.Time{}, false, err
	}

	return value, expiresAt, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", ttl)
	}
	_, err := s.db.Exec(ctx, UpsertEntry, key, value, interval(ttl))
	return err
}

func (s *Store) Del(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, DeleteEntry, key)
	return err
}

// Purge drops expired entries and reports how many went.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, PurgeExpired)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func interval(ttl time.Duration) string {
	return fmt.Sprintf("%d milliseconds", ttl.Milliseconds())
}
