package services

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrPersistenceFailed  = errors.New("content persistence failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Client facing rejection reasons.
const (
	MsgMissingName       = "Missing name"
	MsgMissingType       = "Missing type"
	MsgMissingData       = "Missing data"
	MsgInvalidData       = "Invalid data"
	MsgParentNotFound    = "Parent not found"
	MsgParentNotAFolder  = "Parent is not a folder"
	MsgMissingEmail      = "Missing email"
	MsgMissingPassword   = "Missing password"
	MsgUserAlreadyExists = "Already exist"
)

// ValidationError is a rejected request; Reason goes to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func rejected(reason string) error { return &ValidationError{Reason: reason} }
