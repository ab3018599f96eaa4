package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID        uuid.UUID
		UserID    uuid.UUID
		Name      string
		Type      string
		IsPublic  bool
		ParentID  string
		LocalPath string
		CreatedAt time.Time
	}
	Files []*File
)
