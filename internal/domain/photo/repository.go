package photo

import "context"

type PhotoRepository interface {
	Create(ctx context.Context, newPhoto Photo) (Photo, error)
	GetByID(ctx context.Context, id string, companyID string) (Photo, error)
	Delete(ctx context.Context, id string, companyID string) error
}
