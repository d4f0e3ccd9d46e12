package punch

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/domain/punch"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

type memPunchRepo struct {
	punch.PunchRepository
	rows   []punch.Punch
	nextID int
}

func (m *memPunchRepo) Create(_ context.Context, newPunch punch.Punch) (punch.Punch, error) {
	m.nextID++
	newPunch.ID = string(rune('a' + m.nextID - 1))
	newPunch.CreatedAt = time.Now()
	m.rows = append(m.rows, newPunch)
	return newPunch, nil
}

func (m *memPunchRepo) GetByID(_ context.Context, id string, companyID string) (punch.Punch, error) {
	for _, row := range m.rows {
		if row.ID == id && row.CompanyID == companyID {
			return row, nil
		}
	}
	return punch.Punch{}, pgx.ErrNoRows
}

func (m *memPunchRepo) LastOfDay(_ context.Context, employeeID string, dayStart, dayEnd time.Time) (*punch.Punch, error) {
	var last *punch.Punch
	for i := range m.rows {
		row := m.rows[i]
		if row.EmployeeID != employeeID || row.PunchedAt.Before(dayStart) || !row.PunchedAt.Before(dayEnd) {
			continue
		}
		if last == nil || row.PunchedAt.After(last.PunchedAt) {
			last = &m.rows[i]
		}
	}
	return last, nil
}

func (m *memPunchRepo) List(_ context.Context, filter punch.ListFilter) ([]punch.Punch, error) {
	matched := make([]punch.Punch, 0, len(m.rows))
	for _, row := range m.rows {
		if row.CompanyID != filter.CompanyID {
			continue
		}
		if filter.EmployeeID != nil && row.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Cursor != nil {
			if !row.PunchedAt.Before(filter.Cursor.PunchedAt) {
				continue
			}
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PunchedAt.After(matched[j].PunchedAt)
	})
	if len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

type stubEmployeeService struct {
	employee.EmployeeService
	pinErr error
}

func (s *stubEmployeeService) VerifyPIN(_ context.Context, _ string, _ string) error {
	return s.pinErr
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return s.emp, nil
}

func newTestService(repo *memPunchRepo, pinErr error) punch.PunchService {
	return NewPunchService(
		repo,
		&stubEmployeeService{pinErr: pinErr},
		&stubEmployeeRepo{emp: employee.Employee{ID: "emp-1", CompanyID: "co-1", FullName: "Maria Souza", Active: true}},
		nil,
		sse.NewHub(),
		testLoc,
	)
}

func TestClock_InfersKind(t *testing.T) {
	repo := &memPunchRepo{}
	svc := newTestService(repo, nil)

	first, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "entrada", first.Kind)
	assert.Equal(t, "Maria Souza", first.EmployeeName)

	second, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "saida", second.Kind)

	third, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "entrada", third.Kind)
}

func TestClock_ForcedKind(t *testing.T) {
	repo := &memPunchRepo{}
	svc := newTestService(repo, nil)

	got, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
		Kind:       "saida",
	})
	require.NoError(t, err)
	assert.Equal(t, "saida", got.Kind)
}

func TestClock_RejectsBadPIN(t *testing.T) {
	repo := &memPunchRepo{}
	svc := newTestService(repo, employee.ErrPINMismatch)

	_, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "0000",
	})
	assert.ErrorIs(t, err, employee.ErrPINMismatch)
	assert.Empty(t, repo.rows)
}

func TestClock_ChainsAuditHashes(t *testing.T) {
	repo := &memPunchRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)
	_, err = svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)

	require.Len(t, repo.rows, 2)
	require.NotNil(t, repo.rows[0].AuditHash)
	require.NotNil(t, repo.rows[1].AuditHash)
	assert.NotEqual(t, *repo.rows[0].AuditHash, *repo.rows[1].AuditHash)
}

func TestClock_PublishesEvent(t *testing.T) {
	repo := &memPunchRepo{}
	hub := sse.NewHub()
	svc := NewPunchService(
		repo,
		&stubEmployeeService{},
		&stubEmployeeRepo{emp: employee.Employee{ID: "emp-1", CompanyID: "co-1", FullName: "Maria Souza", Active: true}},
		nil,
		hub,
		testLoc,
	)

	events, cleanup := hub.Subscribe("co-1")
	defer cleanup()

	_, err := svc.Clock(context.Background(), punch.ClockRequest{
		EmployeeID: "8b7f2fd8-5a8a-4b2e-9a52-47d0a1e9b9f1",
		PIN:        "1234",
	})
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, "punch.registered", event.Event)
	default:
		t.Fatal("expected a punch.registered event")
	}
}

func TestGetByID_ScopedToCompany(t *testing.T) {
	repo := &memPunchRepo{rows: []punch.Punch{{
		ID:           "a",
		CompanyID:    "co-1",
		EmployeeID:   "emp-1",
		Kind:         punch.KindEntrance,
		PunchedAt:    time.Date(2025, 3, 10, 8, 0, 0, 0, testLoc),
		EmployeeName: "Maria Souza",
	}}}
	svc := newTestService(repo, nil)

	got, err := svc.GetByID(context.Background(), "a", "co-1")
	require.NoError(t, err)
	assert.Equal(t, "entrada", got.Kind)
	assert.Equal(t, "Maria Souza", got.EmployeeName)

	// Another tenant's ID lookup must come back as not found.
	_, err = svc.GetByID(context.Background(), "a", "co-2")
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)
}

func TestList_KeysetPagination(t *testing.T) {
	repo := &memPunchRepo{}
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, testLoc)
	for i := 0; i < 5; i++ {
		repo.rows = append(repo.rows, punch.Punch{
			ID:           string(rune('a' + i)),
			CompanyID:    "co-1",
			EmployeeID:   "emp-1",
			Kind:         punch.KindEntrance,
			PunchedAt:    base.Add(time.Duration(i) * time.Hour),
			EmployeeName: "Maria Souza",
		})
	}
	svc := newTestService(repo, nil)

	page1, err := svc.List(context.Background(), "co-1", nil, "", "", "", 2)
	require.NoError(t, err)
	require.Len(t, page1.Items, 2)
	require.NotNil(t, page1.NextCursor)
	assert.True(t, page1.Items[0].PunchedAt.Equal(base.Add(4*time.Hour)))
	assert.Equal(t, "Maria Souza", page1.Items[0].EmployeeName)

	page2, err := svc.List(context.Background(), "co-1", nil, "", "", *page1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page2.Items, 2)
	require.NotNil(t, page2.NextCursor)
	assert.True(t, page2.Items[0].PunchedAt.Before(page1.Items[1].PunchedAt))

	page3, err := svc.List(context.Background(), "co-1", nil, "", "", *page2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page3.Items, 1)
	assert.Nil(t, page3.NextCursor)
}

func TestList_RejectsMalformedCursor(t *testing.T) {
	svc := newTestService(&memPunchRepo{}, nil)

	_, err := svc.List(context.Background(), "co-1", nil, "", "", "not-a-cursor", 10)
	assert.ErrorIs(t, err, punch.ErrInvalidCursor)
}
