package file

import (
	"context"

	"files-manager-api/internal/domain/user"
)

type Repository interface {
	CreateFile(ctx context.Context, req *File) (*File, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	FetchFiles(ctx context.Context, userID user.ID, parentID ParentID, skip, limit int) (Files, error)
	CountFiles(ctx context.Context) (int64, error)
}
