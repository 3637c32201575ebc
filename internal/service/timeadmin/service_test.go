package timeadmin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
)

type fakeRepository struct {
	employees []timeadmin.Employee
	err       error

	calls     int
	managerID int64
	start     time.Time
	end       time.Time
}

func (f *fakeRepository) FetchDirectReportsWithWindowData(ctx context.Context, managerID int64, windowStart, windowEnd time.Time) ([]timeadmin.Employee, error) {
	f.calls++
	f.managerID = managerID
	f.start = windowStart
	f.end = windowEnd
	return f.employees, f.err
}

func strPtr(s string) *string { return &s }

func newTestService(repo timeadmin.Repository) *TimeAdministrationServiceImpl {
	svc := NewTimeAdministrationService(repo).(*TimeAdministrationServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateTimeAdministrationReport(t *testing.T) {
	repo := &fakeRepository{employees: []timeadmin.Employee{
		{
			ID:          11,
			Name:        strPtr("Grace"),
			Email:       strPtr("grace@example.com"),
			Image:       strPtr("https://cdn.example.com/grace.png"),
			TimeEntries: entries(repeat(8, 20)...),
		},
		{
			ID:          12,
			Name:        strPtr("Linus"),
			Email:       strPtr("linus@example.com"),
			TimeEntries: entries(repeat(8, 15)...),
			Vacations:   []timeadmin.Vacation{{StartDate: day(2025, 11, 10), EndDate: day(2025, 11, 14)}},
		},
		{
			ID: 13,
		},
		{
			ID:          14,
			Name:        strPtr(""),
			TimeEntries: entries(10),
		},
	}}
	svc := newTestService(repo)

	report, err := svc.GenerateTimeAdministrationReport(context.Background(), timeadmin.TimeAdministrationRequest{
		ManagerID: 7,
		Year:      2025,
		Month:     11,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, int64(7), repo.managerID)
	assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), repo.start)
	assert.Equal(t, 30, repo.end.Day())
	assert.Equal(t, 23, repo.end.Hour())

	assert.Equal(t, 20, report.TotalWorkingDays)
	assert.Equal(t, "2025-11-01", report.PeriodStart)
	assert.Equal(t, "2025-11-30", report.PeriodEnd)
	require.Len(t, report.Rows, 4)

	assert.Equal(t, timeadmin.ReportRow{
		ID:                11,
		Name:              "Grace",
		Email:             "grace@example.com",
		Image:             strPtr("https://cdn.example.com/grace.png"),
		AdministeredHours: 160,
		RequiredHours:     160,
		VacationDays:      0,
		Difference:        0,
		Status:            timeadmin.StatusSufficient,
	}, report.Rows[0])

	assert.Equal(t, int64(12), report.Rows[1].ID)
	assert.Equal(t, 5, report.Rows[1].VacationDays)
	assert.Equal(t, 120.0, report.Rows[1].RequiredHours)
	assert.Equal(t, timeadmin.StatusSufficient, report.Rows[1].Status)

	assert.Equal(t, "Unknown", report.Rows[2].Name)
	assert.Equal(t, "", report.Rows[2].Email)
	assert.Nil(t, report.Rows[2].Image)
	assert.Equal(t, timeadmin.StatusNone, report.Rows[2].Status)
	assert.Equal(t, -160.0, report.Rows[2].Difference)

	assert.Equal(t, "Unknown", report.Rows[3].Name)
	assert.Equal(t, timeadmin.StatusInsufficient, report.Rows[3].Status)
	assert.Equal(t, -150.0, report.Rows[3].Difference)
}

func TestGenerateTimeAdministrationReport_VacationFromPreviousMonth(t *testing.T) {
	repo := &fakeRepository{employees: []timeadmin.Employee{{
		ID:        21,
		Name:      strPtr("Barbara"),
		Vacations: []timeadmin.Vacation{{StartDate: day(2025, 11, 28), EndDate: day(2025, 12, 3)}},
	}}}
	svc := newTestService(repo)

	report, err := svc.GenerateTimeAdministrationReport(context.Background(), timeadmin.TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 12})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	assert.Equal(t, 23, report.TotalWorkingDays)
	assert.Equal(t, 3, report.Rows[0].VacationDays)
	assert.Equal(t, 160.0, report.Rows[0].RequiredHours)
}

func TestGenerateTimeAdministrationReport_Idempotent(t *testing.T) {
	repo := &fakeRepository{employees: []timeadmin.Employee{
		{ID: 1, Name: strPtr("A"), TimeEntries: entries(7.5, 3.25)},
		{ID: 2, Name: strPtr("B"), Vacations: []timeadmin.Vacation{{StartDate: day(2025, 11, 3), EndDate: day(2025, 11, 4)}}},
	}}
	svc := newTestService(repo)
	req := timeadmin.TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 11}

	first, err := svc.GenerateTimeAdministrationReport(context.Background(), req)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 9, 17, 45, 0, 0, time.UTC) }
	second, err := svc.GenerateTimeAdministrationReport(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTimeAdministrationReport_NoDirectReports(t *testing.T) {
	svc := newTestService(&fakeRepository{})

	report, err := svc.GenerateTimeAdministrationReport(context.Background(), timeadmin.TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 11})
	require.NoError(t, err)

	assert.NotNil(t, report.Rows)
	assert.Empty(t, report.Rows)
}

func TestGenerateTimeAdministrationReport_InvalidParameters(t *testing.T) {
	repo := &fakeRepository{}
	svc := newTestService(repo)

	_, err := svc.GenerateTimeAdministrationReport(context.Background(), timeadmin.TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 13})

	assert.ErrorIs(t, err, timeadmin.ErrInvalidParameters)
	assert.Equal(t, 0, repo.calls)
}

func TestGenerateTimeAdministrationReport_UpstreamFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := newTestService(&fakeRepository{err: dbErr})

	_, err := svc.GenerateTimeAdministrationReport(context.Background(), timeadmin.TimeAdministrationRequest{ManagerID: 1, Year: 2025, Month: 11})

	assert.ErrorIs(t, err, timeadmin.ErrUpstreamFetchFailure)
	assert.ErrorIs(t, err, dbErr)
}
