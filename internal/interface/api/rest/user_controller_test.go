package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"files-manager-api/internal/application/services"
	"files-manager-api/internal/domain/user"
)

func setupRouterUC(t *testing.T, us *FakeUserService) *gin.Engine {
	t.Helper()
	r := newTestRouter(t)
	NewUserController(r, us, zap.NewNop(), &FakeAuth{})
	return r
}

func TestUserController_CreateUserHandler(t *testing.T) {
	newID := uuid.New()

	tests := []struct {
		name       string
		body       any
		createFunc func(ctx context.Context, email, password string) (*user.User, error)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: map[string]string{"email": "bob@dylan.com", "password": "toto1234!"},
			createFunc: func(_ context.Context, email, _ string) (*user.User, error) {
				return &user.User{ID: newID, Email: email, PasswordHash: "hash"}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "bad json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid json",
		},
		{
			name: "missing password",
			body: map[string]string{"email": "bob@dylan.com"},
			createFunc: func(context.Context, string, string) (*user.User, error) {
				return nil, &services.ValidationError{Reason: services.MsgMissingPassword}
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Missing password",
		},
		{
			name: "already exists",
			body: map[string]string{"email": "bob@dylan.com", "password": "x"},
			createFunc: func(context.Context, string, string) (*user.User, error) {
				return nil, &services.ValidationError{Reason: services.MsgUserAlreadyExists}
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Already exist",
		},
		{
			name: "store down",
			body: map[string]string{"email": "bob@dylan.com", "password": "x"},
			createFunc: func(context.Context, string, string) (*user.User, error) {
				return nil, fmt.Errorf("create: %w: %w", services.ErrStorageUnavailable, errors.New("eof"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "storage unavailable",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouterUC(t, &FakeUserService{CreateUserFunc: tt.createFunc})

			rr := doReq(t, r, http.MethodPost, RouteUsers, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())

			got := decodeBody(t, rr)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
				return
			}
			assert.Equal(t, newID.String(), got["id"])
			assert.Equal(t, "bob@dylan.com", got["email"])
			assert.NotContains(t, got, "password")
			assert.NotContains(t, got, "passwordHash")
		})
	}
}

func TestUserController_GetMeHandler(t *testing.T) {
	r := setupRouterUC(t, &FakeUserService{})

	rr := doReq(t, r, http.MethodGet, RouteUserMe, nil, withToken(goodToken))
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody(t, rr)
	assert.Equal(t, tokenOwner.ID.String(), got["id"])
	assert.Equal(t, tokenOwner.Email, got["email"])

	rr = doReq(t, r, http.MethodGet, RouteUserMe, nil, withToken("stale"))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", decodeBody(t, rr)["error"])
}
