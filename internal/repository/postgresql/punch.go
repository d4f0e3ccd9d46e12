package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (p *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punches (company_id, employee_id, kind, punched_at, photo_id, audit_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, company_id, employee_id, kind, punched_at, photo_id, audit_hash, created_at
	`

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		newPunch.CompanyID, newPunch.EmployeeID, newPunch.Kind,
		newPunch.PunchedAt, newPunch.PhotoID, newPunch.AuditHash).
		Scan(&created.ID, &created.CompanyID, &created.EmployeeID, &created.Kind,
			&created.PunchedAt, &created.PhotoID, &created.AuditHash, &created.CreatedAt)
	if err != nil {
		return punch.Punch{}, err
	}
	return created, nil
}

// GetByID implements punch.PunchRepository.
func (p *punchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, employee_id, kind, punched_at, photo_id, audit_hash, created_at
		FROM punches
		WHERE id = $1 AND company_id = $2
	`

	var found punch.Punch
	err := q.QueryRow(ctx, query, id, companyID).
		Scan(&found.ID, &found.CompanyID, &found.EmployeeID, &found.Kind,
			&found.PunchedAt, &found.PhotoID, &found.AuditHash, &found.CreatedAt)
	if err != nil {
		return punch.Punch{}, err
	}
	return found, nil
}

// List implements punch.PunchRepository. Pages with a keyset cursor over
// (punched_at, id) descending so deep pages stay cheap.
func (p *punchRepositoryImpl) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT p.id, p.company_id, p.employee_id, p.kind, p.punched_at, p.photo_id, p.audit_hash, p.created_at,
		       e.full_name, c.name, c.cnpj
		FROM punches p
		JOIN employees e ON e.id = p.employee_id
		JOIN companies c ON c.id = p.company_id
		WHERE p.company_id = $1
	`
	args := []interface{}{filter.CompanyID}
	i := 2

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND p.employee_id = $%d", i)
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND p.punched_at >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND p.punched_at < $%d", i)
		args = append(args, *filter.To)
		i++
	}
	if filter.Cursor != nil {
		query += fmt.Sprintf(" AND (p.punched_at, p.id) < ($%d, $%d)", i, i+1)
		args = append(args, filter.Cursor.PunchedAt, filter.Cursor.ID)
		i += 2
	}

	query += fmt.Sprintf(" ORDER BY p.punched_at DESC, p.id DESC LIMIT $%d", i)
	args = append(args, filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var found punch.Punch
		if err := rows.Scan(&found.ID, &found.CompanyID, &found.EmployeeID, &found.Kind,
			&found.PunchedAt, &found.PhotoID, &found.AuditHash, &found.CreatedAt,
			&found.EmployeeName, &found.CompanyName, &found.CompanyCNPJ); err != nil {
			return nil, err
		}
		punches = append(punches, found)
	}
	return punches, rows.Err()
}

// ListByEmployeeBetween implements punch.PunchRepository. Rows come back in
// chronological order ready for pairing.
func (p *punchRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, employee_id, kind, punched_at, photo_id, audit_hash, created_at
		FROM punches
		WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
		ORDER BY punched_at, id
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var found punch.Punch
		if err := rows.Scan(&found.ID, &found.CompanyID, &found.EmployeeID, &found.Kind,
			&found.PunchedAt, &found.PhotoID, &found.AuditHash, &found.CreatedAt); err != nil {
			return nil, err
		}
		punches = append(punches, found)
	}
	return punches, rows.Err()
}

// LastOfDay implements punch.PunchRepository.
func (p *punchRepositoryImpl) LastOfDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) (*punch.Punch, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, company_id, employee_id, kind, punched_at, photo_id, audit_hash, created_at
		FROM punches
		WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
		ORDER BY punched_at DESC, id DESC
		LIMIT 1
	`

	var found punch.Punch
	err := q.QueryRow(ctx, query, employeeID, dayStart, dayEnd).
		Scan(&found.ID, &found.CompanyID, &found.EmployeeID, &found.Kind,
			&found.PunchedAt, &found.PhotoID, &found.AuditHash, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &found, nil
}

// Delete implements punch.PunchRepository.
func (p *punchRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, p.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM punches WHERE id = $1 AND company_id = $2 RETURNING id`, id, companyID).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}
