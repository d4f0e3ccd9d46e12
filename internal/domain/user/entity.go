package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Company administrator - full access
	RoleManager Role = "manager" // Can review timesheets and punches
)

type User struct {
	ID              string
	CompanyID       string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is a company administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageCompany checks if user can change company settings
func (u *User) CanManageCompany() bool {
	return u.IsAdmin()
}
