package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager-api/internal/domain/user"
)

var userColumns = []string{"id", "email", "password_hash", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestRepository_FetchUserByID(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(SelectUserByID).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "bob@dylan.com", "hash", now))

	u, err := repo.FetchUserByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "bob@dylan.com", u.Email)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, now, u.CreatedAt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FetchUserByEmail_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(SelectUserByEmail).
		WithArgs("nobody@dylan.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.FetchUserByEmail(context.Background(), "nobody@dylan.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface, id uuid.UUID)
		wantIs  error
		wantErr bool
	}{
		{
			name: "inserted",
			setup: func(mock pgxmock.PgxPoolIface, id uuid.UUID) {
				mock.ExpectQuery(InsertUser).
					WithArgs("bob@dylan.com", "hash").
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(id, "bob@dylan.com", "hash", time.Now()))
			},
		},
		{
			name: "duplicate email",
			setup: func(mock pgxmock.PgxPoolIface, _ uuid.UUID) {
				mock.ExpectQuery(InsertUser).
					WithArgs("bob@dylan.com", "hash").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantIs: user.ErrEmailAlreadyExists,
		},
		{
			name: "connection lost",
			setup: func(mock pgxmock.PgxPoolIface, _ uuid.UUID) {
				mock.ExpectQuery(InsertUser).
					WithArgs("bob@dylan.com", "hash").
					WillReturnError(errors.New("conn closed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			repo := NewRepository(mock)
			id := uuid.New()
			tt.setup(mock, id)

			u, err := repo.CreateUser(context.Background(), user.User{Email: "bob@dylan.com", PasswordHash: "hash"})
			switch {
			case tt.wantIs != nil:
				require.ErrorIs(t, err, tt.wantIs)
				assert.Nil(t, u)
			case tt.wantErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, user.ErrEmailAlreadyExists)
			default:
				require.NoError(t, err)
				assert.Equal(t, id, u.ID)
			}

			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CountUsers(t *testing.T) {
	mock := newMock(t)
	repo := NewRepository(mock)

	mock.ExpectQuery(CountUsers).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	n, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	require.NoError(t, mock.ExpectationsWereMet())
}
