package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListByCompany implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.company_id, e.full_name, e.position, e.hiring_regime,
		       e.contract_minutes, e.pin_hash, e.active, e.created_at, e.updated_at,
		       c.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.company_id = $1
	`
	if activeOnly {
		query += " AND e.active"
	}
	query += " ORDER BY e.full_name"

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var found employee.Employee
		if err := rows.Scan(&found.ID, &found.CompanyID, &found.FullName, &found.Position,
			&found.HiringRegime, &found.ContractMinutes, &found.PINHash, &found.Active,
			&found.CreatedAt, &found.UpdatedAt, &found.CompanyName); err != nil {
			return nil, err
		}
		employees = append(employees, found)
	}
	return employees, rows.Err()
}

// ListActiveIDsByCompany implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActiveIDsByCompany(ctx context.Context, companyID string) ([]string, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE company_id = $1 AND active ORDER BY full_name`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.company_id, e.full_name, e.position, e.hiring_regime,
		       e.contract_minutes, e.pin_hash, e.active, e.created_at, e.updated_at,
		       c.name
		FROM employees e
		JOIN companies c ON c.id = e.company_id
		WHERE e.id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.CompanyID, &found.FullName, &found.Position,
			&found.HiringRegime, &found.ContractMinutes, &found.PINHash, &found.Active,
			&found.CreatedAt, &found.UpdatedAt, &found.CompanyName)
	if err != nil {
		return employee.Employee{}, err
	}
	return found, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (company_id, full_name, position, hiring_regime, contract_minutes, pin_hash, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, company_id, full_name, position, hiring_regime, contract_minutes, pin_hash, active, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.CompanyID, newEmployee.FullName, newEmployee.Position,
		newEmployee.HiringRegime, newEmployee.ContractMinutes, newEmployee.PINHash, newEmployee.Active).
		Scan(&created.ID, &created.CompanyID, &created.FullName, &created.Position,
			&created.HiringRegime, &created.ContractMinutes, &created.PINHash, &created.Active,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, pinHash *string) error {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.HiringRegime != nil {
		updates["hiring_regime"] = *req.HiringRegime
	}
	if req.ContractMinutes != nil {
		updates["contract_minutes"] = *req.ContractMinutes
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if pinHash != nil {
		updates["pin_hash"] = *pinHash
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		return fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	var deletedID string
	err := q.QueryRow(ctx, `UPDATE employees SET active = false, updated_at = now() WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}
