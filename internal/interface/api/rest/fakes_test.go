package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"files-manager-api/internal/application/ports"
	"files-manager-api/internal/application/services"
	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
)

const goodToken = "good-token"

var tokenOwner = &user.User{ID: uuid.MustParse("5f0c1d2e-3a4b-4c5d-8e6f-7a8b9c0d1e2f"), Email: "bob@dylan.com"}

type FakeAuth struct {
	ConnectFunc    func(ctx context.Context, email, password string) (string, error)
	DisconnectFunc func(ctx context.Context, token string) error
}

// ResolveUser accepts goodToken only.
func (f *FakeAuth) ResolveUser(_ context.Context, token string) (*user.User, error) {
	if token == goodToken {
		return tokenOwner, nil
	}
	return nil, services.ErrUnauthorized
}
func (f *FakeAuth) Connect(ctx context.Context, email, password string) (string, error) {
	if f.ConnectFunc == nil {
		return "", errors.New("not used")
	}
	return f.ConnectFunc(ctx, email, password)
}
func (f *FakeAuth) Disconnect(ctx context.Context, token string) error {
	if f.DisconnectFunc == nil {
		return errors.New("not used")
	}
	return f.DisconnectFunc(ctx, token)
}

type FakeFileService struct {
	UploadFunc func(ctx context.Context, owner *user.User, req file.UploadRequest) (*file.File, error)
	ShowFunc   func(ctx context.Context, owner *user.User, fileID string) (*file.File, error)
	IndexFunc  func(ctx context.Context, owner *user.User, parentID file.ParentID, page int) (file.Files, error)
}

func (f *FakeFileService) Upload(ctx context.Context, owner *user.User, req file.UploadRequest) (*file.File, error) {
	if f.UploadFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UploadFunc(ctx, owner, req)
}
func (f *FakeFileService) Show(ctx context.Context, owner *user.User, fileID string) (*file.File, error) {
	if f.ShowFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ShowFunc(ctx, owner, fileID)
}
func (f *FakeFileService) Index(ctx context.Context, owner *user.User, parentID file.ParentID, page int) (file.Files, error) {
	if f.IndexFunc == nil {
		return nil, errors.New("not used")
	}
	return f.IndexFunc(ctx, owner, parentID, page)
}

type FakeUserService struct {
	CreateUserFunc func(ctx context.Context, email, password string) (*user.User, error)
}

func (f *FakeUserService) CreateUser(ctx context.Context, email, password string) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, email, password)
}

type FakeAppService struct {
	StatusValue ports.Status
	StatsFunc   func(ctx context.Context) (ports.Stats, error)
}

func (f *FakeAppService) Status(context.Context) ports.Status { return f.StatusValue }
func (f *FakeAppService) Stats(ctx context.Context) (ports.Stats, error) {
	if f.StatsFunc == nil {
		return ports.Stats{}, errors.New("not used")
	}
	return f.StatsFunc(ctx)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func withToken(token string) map[string]string {
	return map[string]string{"X-Token": token}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}
