package photo

import (
	"context"
	"io"
)

type PhotoService interface {
	// Store saves the capture and returns the persisted record.
	Store(ctx context.Context, companyID, employeeID, contentType string, size int64, r io.Reader) (Photo, error)
	// SignedURL returns a short-lived URL for viewing the capture.
	SignedURL(ctx context.Context, id string, companyID string) (string, error)
	Delete(ctx context.Context, id string, companyID string) error
}
