package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"files-manager-api/internal/application/ports"
	domain "files-manager-api/internal/domain/file"
	"files-manager-api/internal/domain/user"
	"files-manager-api/internal/infrastructure/mq"
	fileDTO "files-manager-api/internal/interface/api/rest/dto/file"
)

type FileService struct {
	validator      *PayloadValidator
	content        ports.ContentStore
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

// NewFileService: mq may be nil, file events are then not emitted.
func NewFileService(
	content ports.ContentStore,
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		validator:      NewPayloadValidator(fileRepository),
		content:        content,
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (fs *FileService) Upload(
	ctx context.Context,
	owner *user.User,
	req domain.UploadRequest,
) (*domain.File, error) {
	payload, err := fs.validator.Validate(ctx, req)
	if err != nil {
		return nil, err
	}

	f := &domain.File{
		UserID:   owner.ID,
		Name:     payload.Name,
		Type:     payload.Type,
		IsPublic: payload.IsPublic,
		ParentID: payload.ParentID,
	}

	if payload.Type != domain.TypeFolder {
		content, err := decodeContent(payload.Data)
		if err != nil {
			return nil, rejected(MsgInvalidData)
		}

		f.LocalPath, err = fs.content.Save(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("save content: %w: %w", ErrPersistenceFailed, err)
		}
	}

	out, err := fs.fileRepository.CreateFile(ctx, f)
	if err != nil {
		if f.LocalPath != "" {
			// best effort, the record that would point at it does not exist
			_ = fs.content.Remove(context.WithoutCancel(ctx), f.LocalPath)
		}
		return nil, fmt.Errorf("create file: %w: %w", ErrStorageUnavailable, err)
	}

	if out.Type == domain.TypeFolder {
		fs.mCounter.WithLabelValues("folders_created_total").Inc()
	} else {
		fs.mCounter.WithLabelValues("files_created_total").Inc()
	}
	fs.notify(out)

	return out, nil
}

func (fs *FileService) Show(ctx context.Context, owner *user.User, fileID string) (*domain.File, error) {
	id, err := uuid.Parse(fileID)
	if err != nil {
		return nil, ErrNotFound
	}

	f, err := fs.fileRepository.FetchFileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w: %w", ErrStorageUnavailable, err)
	}
	// someone else's record looks exactly like a missing one
	if f == nil || f.UserID != owner.ID {
		return nil, ErrNotFound
	}

	return f, nil
}

func (fs *FileService) Index(
	ctx context.Context,
	owner *user.User,
	parentID domain.ParentID,
	page int,
) (domain.Files, error) {
	if page < 0 {
		page = 0
	}
	// the offset would overflow; no store holds that many records
	if page > math.MaxInt/domain.PageSize {
		return domain.Files{}, nil
	}

	fls, err := fs.fileRepository.FetchFiles(ctx, owner.ID, parentID, page*domain.PageSize, domain.PageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch files: %w: %w", ErrStorageUnavailable, err)
	}

	return fls, nil
}

func (fs *FileService) notify(f *domain.File) {
	if fs.mq == nil {
		return
	}

	select {
	case fs.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  mq.ActionFileCreated,
		UserID:  f.UserID.String(),
		Payload: fileDTO.ToResponseFile(*f),
	}:
	default:
		fs.mCounter.WithLabelValues("file_events_dropped_total").Inc()
	}
}

// decodeContent accepts standard base64 with or without padding; whitespace is ignored.
func decodeContent(data string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	b, err := base64.StdEncoding.DecodeString(clean)
	if err == nil {
		return b, nil
	}

	return base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "="))
}
