package photo

import "time"

// Photo is the capture stored alongside a punch for audit purposes.
type Photo struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	StoragePath string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
