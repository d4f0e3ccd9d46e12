package photo

import "errors"

var (
	ErrPhotoNotFound   = errors.New("photo not found")
	ErrUnsupportedType = errors.New("unsupported photo content type")
	ErrPhotoTooLarge   = errors.New("photo exceeds the maximum allowed size")
)
