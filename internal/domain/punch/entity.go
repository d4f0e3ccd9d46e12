package punch

import (
	"time"
)

// Kind is the clock action type. Stored values keep the original Portuguese
// wire form used by the kiosk devices.
type Kind string

const (
	KindEntrance Kind = "entrada"
	KindExit     Kind = "saida"
)

// Valid reports whether k is one of the two known clock actions.
func (k Kind) Valid() bool {
	return k == KindEntrance || k == KindExit
}

// Punch is one observed clock action. Immutable once created; the timesheet
// computation only ever reads these rows.
type Punch struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Kind       Kind
	PunchedAt  time.Time
	PhotoID    *string
	AuditHash  *string
	CreatedAt  time.Time

	// DTO
	EmployeeName string
	CompanyName  string
	CompanyCNPJ  string
}
