package postgresql

import (
	"context"

	"github.com/pontocerto/ponto-backend-go/internal/domain/photo"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type photoRepositoryImpl struct {
	db *database.DB
}

func NewPhotoRepository(db *database.DB) photo.PhotoRepository {
	return &photoRepositoryImpl{db: db}
}

// Create implements photo.PhotoRepository.
func (p *photoRepositoryImpl) Create(ctx context.Context, newPhoto photo.Photo) (photo.Photo, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO photos (company_id, employee_id, storage_path, content_type, size_bytes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_id, employee_id, storage_path, content_type, size_bytes, created_at
	`

	var created photo.Photo
	err := q.QueryRow(ctx, query,
		newPhoto.CompanyID, newPhoto.EmployeeID, newPhoto.StoragePath,
		newPhoto.ContentType, newPhoto.SizeBytes).
		Scan(&created.ID, &created.CompanyID, &created.EmployeeID, &created.StoragePath,
			&created.ContentType, &created.SizeBytes, &created.CreatedAt)
	if err != nil {
		return photo.Photo{}, err
	}
	return created, nil
}

// GetByID implements photo.PhotoRepository.
func (p *photoRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (photo.Photo, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, employee_id, storage_path, content_type, size_bytes, created_at
		FROM photos
		WHERE id = $1 AND company_id = $2
	`

	var found photo.Photo
	err := q.QueryRow(ctx, query, id, companyID).
		Scan(&found.ID, &found.CompanyID, &found.EmployeeID, &found.StoragePath,
			&found.ContentType, &found.SizeBytes, &found.CreatedAt)
	if err != nil {
		return photo.Photo{}, err
	}
	return found, nil
}

// Delete implements photo.PhotoRepository.
func (p *photoRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, p.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM photos WHERE id = $1 AND company_id = $2 RETURNING id`, id, companyID).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}
