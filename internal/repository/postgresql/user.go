package postgresql

import (
	"context"

	"github.com/pontocerto/ponto-backend-go/internal/domain/user"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, company_id, email, password_hash, role, oauth_provider, oauth_provider_id, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var found user.User
	err := row.Scan(&found.ID, &found.CompanyID, &found.Email, &found.PasswordHash,
		&found.Role, &found.OAuthProvider, &found.OAuthProviderID,
		&found.CreatedAt, &found.UpdatedAt)
	return found, err
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	return scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	return scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// Create implements user.UserRepository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (company_id, email, password_hash, role, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		newUser.CompanyID, newUser.Email, newUser.PasswordHash, newUser.Role,
		newUser.OAuthProvider, newUser.OAuthProviderID))
}

// ExistsByEmail implements user.UserRepository.
func (u *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, u.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (u *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		UPDATE users
		SET oauth_provider = 'google', oauth_provider_id = $1, updated_at = now()
		WHERE email = $2
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, googleID, email))
}

// UpdatePassword implements user.UserRepository.
func (u *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, u.db)

	var updatedID string
	err := q.QueryRow(ctx, `UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2 RETURNING id`,
		passwordHash, userID).Scan(&updatedID)
	return err
}
