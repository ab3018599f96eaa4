package file

import (
	domain "files-manager-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	return &domain.File{
		ID:        model.ID,
		UserID:    model.UserID,
		Name:      model.Name,
		Type:      domain.Type(model.Type),
		IsPublic:  model.IsPublic,
		ParentID:  domain.ParentFromKey(model.ParentID),
		LocalPath: model.LocalPath,
		CreatedAt: model.CreatedAt,
	}
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
