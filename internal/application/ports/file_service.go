package ports

import (
	"context"

	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, owner *user.User, req file.UploadRequest) (*file.File, error)
	Show(ctx context.Context, owner *user.User, fileID string) (*file.File, error)
	Index(ctx context.Context, owner *user.User, parentID file.ParentID, page int) (file.Files, error)
}
