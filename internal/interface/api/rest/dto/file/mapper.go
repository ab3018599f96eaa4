package file

import (
	"encoding/json"
	"strconv"

	"files-manager-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		ID:       fDomain.ID,
		UserID:   fDomain.UserID,
		Name:     fDomain.Name,
		Type:     string(fDomain.Type),
		IsPublic: fDomain.IsPublic,
		ParentID: fDomain.ParentID,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}

func ToDomainUploadRequest(req UploadRequest) file.UploadRequest {
	return file.UploadRequest{
		Name:     flatten(req.Name),
		Type:     flatten(req.Type),
		ParentID: flatten(req.ParentID),
		IsPublic: req.IsPublic,
		Data:     flatten(req.Data),
	}
}

// flatten turns a JSON value into its string form; falsy values become "".
func flatten(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case bool:
		if !p {
			return ""
		}
		return strconv.FormatBool(p)
	case float64:
		if p == 0 {
			return ""
		}
		return strconv.FormatFloat(p, 'f', -1, 64)
	case json.Number:
		if f, err := p.Float64(); err == nil && f == 0 {
			return ""
		}
		return p.String()
	default:
		b, _ := json.Marshal(p)
		return string(b)
	}
}
