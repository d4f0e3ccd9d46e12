package photo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/photo"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/storage"
)

const maxPhotoSize = 10 << 20 // 10MB

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type PhotoServiceImpl struct {
	photo.PhotoRepository
	files storage.FileStorage
}

func NewPhotoService(photoRepository photo.PhotoRepository, files storage.FileStorage) photo.PhotoService {
	return &PhotoServiceImpl{PhotoRepository: photoRepository, files: files}
}

// Store implements photo.PhotoService.
func (p *PhotoServiceImpl) Store(ctx context.Context, companyID, employeeID, contentType string, size int64, r io.Reader) (photo.Photo, error) {
	if _, ok := allowedContentTypes[contentType]; !ok {
		return photo.Photo{}, photo.ErrUnsupportedType
	}
	if size > maxPhotoSize {
		return photo.Photo{}, photo.ErrPhotoTooLarge
	}

	path := fmt.Sprintf("photos/%s/%s/%s", companyID, employeeID, uuid.NewString())
	stored, err := p.files.Upload(ctx, io.LimitReader(r, maxPhotoSize), path, contentType)
	if err != nil {
		return photo.Photo{}, fmt.Errorf("failed to upload photo: %w", err)
	}

	created, err := p.PhotoRepository.Create(ctx, photo.Photo{
		CompanyID:   companyID,
		EmployeeID:  employeeID,
		StoragePath: stored,
		ContentType: contentType,
		SizeBytes:   size,
	})
	if err != nil {
		return photo.Photo{}, fmt.Errorf("failed to persist photo: %w", err)
	}
	return created, nil
}

// SignedURL implements photo.PhotoService.
func (p *PhotoServiceImpl) SignedURL(ctx context.Context, id string, companyID string) (string, error) {
	found, err := p.PhotoRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", photo.ErrPhotoNotFound
		}
		return "", fmt.Errorf("failed to get photo: %w", err)
	}

	url, err := p.files.GetURL(ctx, found.StoragePath, 15*time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to sign photo URL: %w", err)
	}
	return url, nil
}

// Delete implements photo.PhotoService.
func (p *PhotoServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	found, err := p.PhotoRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return photo.ErrPhotoNotFound
		}
		return fmt.Errorf("failed to get photo: %w", err)
	}

	if err := p.files.Delete(ctx, found.StoragePath); err != nil {
		return fmt.Errorf("failed to delete stored photo: %w", err)
	}
	if err := p.PhotoRepository.Delete(ctx, id, companyID); err != nil {
		return fmt.Errorf("failed to delete photo record: %w", err)
	}
	return nil
}
