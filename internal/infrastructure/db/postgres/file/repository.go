package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFile(ctx context.Context, req *file.File) (*file.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.UserID, req.Name, string(req.Type), req.IsPublic, req.ParentID.Key(), req.LocalPath,
	).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.IsPublic,
		&f.ParentID,
		&f.LocalPath,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFileByID(ctx context.Context, id file.ID) (*file.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Type,
		&f.IsPublic,
		&f.ParentID,
		&f.LocalPath,
		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), nil
}

func (r *Repository) FetchFiles(
	ctx context.Context,
	userID user.ID,
	parentID file.ParentID,
	skip, limit int,
) (file.Files, error) {
	rows, err := r.db.Query(ctx, SelectFiles, userID, parentID.Key(), limit, skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fs := Files{}
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.UserID,
			&f.Name,
			&f.Type,
			&f.IsPublic,
			&f.ParentID,
			&f.LocalPath,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CountFiles(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, CountFiles).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
