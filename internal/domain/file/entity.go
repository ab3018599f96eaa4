package file

import (
	"time"

	"github.com/google/uuid"

	"files-manager-api/internal/domain/user"
)

// PageSize is the fixed window of a listing page.
const PageSize = 20

type Type string

const (
	TypeFolder Type = "folder"
	TypeFile   Type = "file"
	TypeImage  Type = "image"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFolder, TypeFile, TypeImage:
		return true
	}
	return false
}

type (
	ID   = uuid.UUID
	File struct {
		ID       ID
		UserID   user.ID
		Name     string
		Type     Type
		IsPublic bool
		ParentID ParentID

		// LocalPath is where the bytes of a file or image live. Empty for folders.
		LocalPath string

		CreatedAt time.Time
	}
	Files []*File

	// UploadRequest is an upload body as the client sent it. ParentID holds the
	// raw parent value in string form, "" when the client sent none.
	UploadRequest struct {
		Name     string
		Type     string
		ParentID string
		IsPublic *bool
		Data     string
	}

	// Payload is an UploadRequest that passed validation.
	Payload struct {
		Name     string
		Type     Type
		ParentID ParentID
		IsPublic bool
		Data     string
	}
)
