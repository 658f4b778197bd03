package service

import (
	"context"
	"errors"
	"fmt"

	"fitpro/trainer-app/internal/domain"
	"fitpro/trainer-app/internal/storage"
	"fitpro/trainer-app/internal/store"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidResource  = errors.New("invalid resource")
)

// ResourceService manages the videos, articles and files a trainer shares
// with clients. Link resources are stored as-is; file resources live in
// object storage and are read back through short-lived presigned URLs.
type ResourceService interface {
	Add(ctx context.Context, r *domain.ClientResource) (*domain.ClientResource, error)
	ListForClient(ctx context.Context, clientID string) ([]domain.ClientResource, error)
	Delete(ctx context.Context, id string) error

	// GenerateUploadURL returns the object key and a presigned PUT URL for
	// uploading a file resource directly to object storage.
	GenerateUploadURL(ctx context.Context, clientID, fileName, contentType string) (objectKey, uploadURL string, err error)
}

type resourceService struct {
	resources store.ResourceStore
	files     storage.FileStorage
}

// NewResourceService creates a new instance of resourceService. files may
// be nil when no object storage is configured; file-type resources are
// then rejected while link resources keep working.
func NewResourceService(resources store.ResourceStore, files storage.FileStorage) ResourceService {
	return &resourceService{resources: resources, files: files}
}

func (s *resourceService) Add(ctx context.Context, r *domain.ClientResource) (*domain.ClientResource, error) {
	switch r.Type {
	case domain.ResourceLink:
		if r.URL == "" {
			return nil, fmt.Errorf("%w: link resource needs a url", ErrInvalidResource)
		}
	case domain.ResourceFile:
		if s.files == nil {
			return nil, fmt.Errorf("%w: file storage is not configured", ErrInvalidResource)
		}
		if r.ObjectKey == "" {
			return nil, fmt.Errorf("%w: file resource needs an object key", ErrInvalidResource)
		}
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidResource, r.Type)
	}

	created, err := s.resources.Create(ctx, r)
	if err != nil {
		if errors.Is(err, store.ErrClientRequired) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return created, nil
}

// ListForClient returns the client's resources with download URLs resolved
// for file-type entries. A presign failure downgrades the entry rather
// than failing the whole listing.
func (s *resourceService) ListForClient(ctx context.Context, clientID string) ([]domain.ClientResource, error) {
	resources, err := s.resources.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	for i := range resources {
		r := &resources[i]
		if r.Type != domain.ResourceFile || s.files == nil {
			continue
		}
		url, err := s.files.GeneratePresignedDownloadURL(ctx, r.ObjectKey, storage.DefaultPresignedURLExpiry)
		if err != nil {
			log.Errorf("presign download for resource %s (%s): %s", r.ID, r.ObjectKey, err)
			continue
		}
		r.URL = url
	}
	return resources, nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	r, err := s.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResourceNotFound
		}
		return err
	}

	if r.Type == domain.ResourceFile && s.files != nil && r.ObjectKey != "" {
		if err := s.files.DeleteObject(ctx, r.ObjectKey); err != nil {
			// The metadata still goes; the orphaned object is logged for
			// manual cleanup.
			log.Errorf("delete object %s for resource %s: %s", r.ObjectKey, id, err)
		}
	}

	if err := s.resources.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResourceNotFound
		}
		return err
	}
	return nil
}

func (s *resourceService) GenerateUploadURL(ctx context.Context, clientID, fileName, contentType string) (string, string, error) {
	if s.files == nil {
		return "", "", fmt.Errorf("%w: file storage is not configured", ErrInvalidResource)
	}
	objectKey := fmt.Sprintf("resources/%s/%s-%s", clientID, uuid.NewString(), fileName)
	uploadURL, err := s.files.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", "", err
	}
	return objectKey, uploadURL, nil
}
