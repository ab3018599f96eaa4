package file

import (
	"github.com/google/uuid"

	"files-manager-api/internal/domain/file"
)

type (
	// File never carries the stored content location.
	File struct {
		ID       uuid.UUID     `json:"id"`
		UserID   uuid.UUID     `json:"userId"`
		Name     string        `json:"name"`
		Type     string        `json:"type"`
		IsPublic bool          `json:"isPublic"`
		ParentID file.ParentID `json:"parentId"`
	}
	Files []File
)
