package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"files-manager-api/internal/domain/file"
)

// PayloadValidator checks upload bodies. The order of the checks is part of
// the contract: the first failing check decides the reason.
type PayloadValidator struct {
	fileRepository file.Repository
}

func NewPayloadValidator(fileRepository file.Repository) *PayloadValidator {
	return &PayloadValidator{fileRepository: fileRepository}
}

func (pv *PayloadValidator) Validate(ctx context.Context, req file.UploadRequest) (file.Payload, error) {
	if req.Name == "" {
		return file.Payload{}, rejected(MsgMissingName)
	}
	if req.Type == "" {
		return file.Payload{}, rejected(MsgMissingType)
	}
	// unknown types share the absent-type reason
	tp := file.Type(req.Type)
	if !tp.Valid() {
		return file.Payload{}, rejected(MsgMissingType)
	}
	if req.Data == "" && tp != file.TypeFolder {
		return file.Payload{}, rejected(MsgMissingData)
	}

	parentID, err := pv.parent(ctx, req.ParentID)
	if err != nil {
		return file.Payload{}, err
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	var data string
	if tp != file.TypeFolder {
		data = req.Data
	}

	return file.Payload{
		Name:     req.Name,
		Type:     tp,
		ParentID: parentID,
		IsPublic: isPublic,
		Data:     data,
	}, nil
}

func (pv *PayloadValidator) parent(ctx context.Context, raw string) (file.ParentID, error) {
	if raw == "" || raw == file.Root().Key() {
		return file.Root(), nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return file.ParentID{}, rejected(MsgParentNotFound)
	}

	parent, err := pv.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return file.ParentID{}, fmt.Errorf("parent lookup: %w: %w", ErrStorageUnavailable, err)
	}
	if parent == nil {
		return file.ParentID{}, rejected(MsgParentNotFound)
	}
	if parent.Type != file.TypeFolder {
		return file.ParentID{}, rejected(MsgParentNotAFolder)
	}

	return file.Ref(parent.ID), nil
}
