package punch

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/photo"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/sse"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employees employee.EmployeeService
	empRepo   employee.EmployeeRepository
	photos    photo.PhotoService
	hub       *sse.Hub
	loc       *time.Location
}

func NewPunchService(
	punchRepository punch.PunchRepository,
	employees employee.EmployeeService,
	empRepo employee.EmployeeRepository,
	photos photo.PhotoService,
	hub *sse.Hub,
	loc *time.Location,
) punch.PunchService {
	if loc == nil {
		loc = time.UTC
	}
	return &PunchServiceImpl{
		PunchRepository: punchRepository,
		employees:       employees,
		empRepo:         empRepo,
		photos:          photos,
		hub:             hub,
		loc:             loc,
	}
}

// Clock implements punch.PunchService. The kiosk flow: the employee types a
// PIN, the punch kind is inferred from the last mark of the local day unless
// the request forces one.
func (p *PunchServiceImpl) Clock(ctx context.Context, req punch.ClockRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	if err := p.employees.VerifyPIN(ctx, req.EmployeeID, req.PIN); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := p.empRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := time.Now().In(p.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)
	last, err := p.PunchRepository.LastOfDay(ctx, req.EmployeeID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to get last punch of day: %w", err)
	}

	kind := punch.Kind(req.Kind)
	if kind == "" {
		kind = punch.KindEntrance
		if last != nil && last.Kind == punch.KindEntrance {
			kind = punch.KindExit
		}
	}

	var photoID *string
	if req.File != nil && req.FileHeader != nil {
		stored, err := p.photos.Store(ctx, emp.CompanyID, req.EmployeeID,
			req.FileHeader.Header.Get("Content-Type"), req.FileHeader.Size, req.File)
		if err != nil {
			return punch.PunchResponse{}, err
		}
		photoID = &stored.ID
	}

	var prevHash string
	if last != nil && last.AuditHash != nil {
		prevHash = *last.AuditHash
	}
	auditHash := chainHash(prevHash, req.EmployeeID, string(kind), now)

	created, err := p.PunchRepository.Create(ctx, punch.Punch{
		CompanyID:  emp.CompanyID,
		EmployeeID: req.EmployeeID,
		Kind:       kind,
		PunchedAt:  now,
		PhotoID:    photoID,
		AuditHash:  &auditHash,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}
	created.EmployeeName = emp.FullName

	p.hub.Publish(emp.CompanyID, sse.Event{
		CompanyID: emp.CompanyID,
		Event:     "punch.registered",
		Data:      p.toResponse(created),
	})

	return p.toResponse(created), nil
}

// CreateManual implements punch.PunchService.
func (p *PunchServiceImpl) CreateManual(ctx context.Context, req punch.CreateManualRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	punchedAt, err := time.ParseInLocation("2006-01-02 15:04:05", req.PunchedAt, p.loc)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("invalid punch timestamp: %w", err)
	}

	emp, err := p.empRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if req.CompanyID != "" && req.CompanyID != emp.CompanyID {
		return punch.PunchResponse{}, employee.ErrEmployeeNotFound
	}

	auditHash := chainHash("", req.EmployeeID, req.Kind, punchedAt)
	created, err := p.PunchRepository.Create(ctx, punch.Punch{
		CompanyID:  emp.CompanyID,
		EmployeeID: req.EmployeeID,
		Kind:       punch.Kind(req.Kind),
		PunchedAt:  punchedAt,
		AuditHash:  &auditHash,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}
	created.EmployeeName = emp.FullName

	return p.toResponse(created), nil
}

// GetByID implements punch.PunchService.
func (p *PunchServiceImpl) GetByID(ctx context.Context, id string, companyID string) (punch.PunchResponse, error) {
	found, err := p.PunchRepository.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, punch.ErrPunchNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get punch: %w", err)
	}
	return p.toResponse(found), nil
}

// List implements punch.PunchService.
func (p *PunchServiceImpl) List(ctx context.Context, companyID string, employeeID *string, from, to, cursor string, limit int) (punch.ListResponse, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := punch.ListFilter{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Limit:      limit + 1, // one extra row to detect the next page
	}

	if from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, p.loc)
		if err != nil {
			return punch.ListResponse{}, fmt.Errorf("invalid from date: %w", err)
		}
		filter.From = &t
	}
	if to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, p.loc)
		if err != nil {
			return punch.ListResponse{}, fmt.Errorf("invalid to date: %w", err)
		}
		end := t.AddDate(0, 0, 1)
		filter.To = &end
	}
	if cursor != "" {
		decoded, err := decodeCursor(cursor)
		if err != nil {
			return punch.ListResponse{}, err
		}
		filter.Cursor = decoded
	}

	punches, err := p.PunchRepository.List(ctx, filter)
	if err != nil {
		return punch.ListResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	resp := punch.ListResponse{}
	hasMore := len(punches) > limit
	if hasMore {
		punches = punches[:limit]
	}
	resp.Items = make([]punch.PunchResponse, 0, len(punches))
	for _, found := range punches {
		resp.Items = append(resp.Items, p.toResponse(found))
	}
	if hasMore {
		lastRow := punches[len(punches)-1]
		encoded := encodeCursor(punch.Cursor{PunchedAt: lastRow.PunchedAt, ID: lastRow.ID})
		resp.NextCursor = &encoded
	}
	return resp, nil
}

// Delete implements punch.PunchService.
func (p *PunchServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	if err := p.PunchRepository.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ErrPunchNotFound
		}
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

func (p *PunchServiceImpl) toResponse(found punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:           found.ID,
		CompanyID:    found.CompanyID,
		EmployeeID:   found.EmployeeID,
		Kind:         string(found.Kind),
		PunchedAt:    found.PunchedAt.In(p.loc),
		CreatedAt:    found.CreatedAt,
		EmployeeName: found.EmployeeName,
		CompanyName:  found.CompanyName,
	}
}

// chainHash links each punch to the previous mark of the day, so tampering
// with one row breaks every later hash.
func chainHash(prev, employeeID, kind string, at time.Time) string {
	sum := sha256.Sum256([]byte(prev + "|" + employeeID + "|" + kind + "|" + at.UTC().Format(time.RFC3339Nano)))
	return hex.EncodeToString(sum[:])
}

func encodeCursor(c punch.Cursor) string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (*punch.Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, punch.ErrInvalidCursor
	}
	var c punch.Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, punch.ErrInvalidCursor
	}
	if c.ID == "" || c.PunchedAt.IsZero() {
		return nil, punch.ErrInvalidCursor
	}
	return &c, nil
}
