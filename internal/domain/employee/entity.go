package employee

import "time"

type Employee struct {
	ID              string
	CompanyID       string
	FullName        string
	Position        *string
	HiringRegime    HiringRegime
	ContractMinutes int
	PINHash         string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Denormalized for listings.
	CompanyName string
}

type HiringRegime string

const (
	HiringRegimeCLT        HiringRegime = "clt"
	HiringRegimePJ         HiringRegime = "pj"
	HiringRegimeInternship HiringRegime = "estagio"
	HiringRegimeTemporary  HiringRegime = "temporario"
)

func (r HiringRegime) Valid() bool {
	switch r {
	case HiringRegimeCLT, HiringRegimePJ, HiringRegimeInternship, HiringRegimeTemporary:
		return true
	}
	return false
}
