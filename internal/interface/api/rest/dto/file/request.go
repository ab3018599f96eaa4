package file

// UploadRequest keeps the loosely typed fields as sent; the mapper flattens them.
type UploadRequest struct {
	Name     any   `json:"name"`
	Type     any   `json:"type"`
	ParentID any   `json:"parentId"`
	IsPublic *bool `json:"isPublic"`
	Data     any   `json:"data"`
}
