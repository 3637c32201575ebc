package timeadmin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/calendar"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

type TimeAdministrationServiceImpl struct {
	repo timeadmin.Repository
	now  func() time.Time
}

func NewTimeAdministrationService(repo timeadmin.Repository) timeadmin.Service {
	return &TimeAdministrationServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

// GenerateTimeAdministrationReport builds one row per direct report of req.ManagerID for the
// requested month, in the order the repository returns them. The result depends only on the
// request and the repository data.
func (s *TimeAdministrationServiceImpl) GenerateTimeAdministrationReport(ctx context.Context, req timeadmin.TimeAdministrationRequest) (timeadmin.Report, error) {
	if err := req.Validate(); err != nil {
		return timeadmin.Report{}, err
	}

	monthStart, monthEnd := calendar.MonthWindow(req.Year, req.Month)
	if monthStart.After(monthEnd) {
		return timeadmin.Report{}, timeadmin.ErrInvalidRange
	}

	totalWorkingDays := calendar.WorkingDaysInMonth(req.Year, req.Month)

	employees, err := s.repo.FetchDirectReportsWithWindowData(ctx, req.ManagerID, monthStart, monthEnd)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch time administration data",
			"manager_id", req.ManagerID,
			"year", req.Year,
			"month", req.Month,
			"error", err,
		)
		return timeadmin.Report{}, fmt.Errorf("%w: %w", timeadmin.ErrUpstreamFetchFailure, err)
	}

	rows := make([]timeadmin.ReportRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, buildRow(emp, monthStart, monthEnd, totalWorkingDays))
	}

	slog.DebugContext(ctx, "time administration report generated",
		"manager_id", req.ManagerID,
		"year", req.Year,
		"month", req.Month,
		"employees", len(rows),
	)

	return timeadmin.Report{
		Year:             req.Year,
		Month:            req.Month,
		PeriodStart:      monthStart.Format(validator.DateLayout),
		PeriodEnd:        monthEnd.Format(validator.DateLayout),
		TotalWorkingDays: totalWorkingDays,
		Rows:             rows,
	}, nil
}

func buildRow(emp timeadmin.Employee, monthStart, monthEnd time.Time, totalWorkingDays int) timeadmin.ReportRow {
	vacationDays := VacationWorkingDays(emp.Vacations, monthStart, monthEnd)
	totals := Aggregate(emp.TimeEntries, vacationDays, totalWorkingDays)

	name := "Unknown"
	if emp.Name != nil && *emp.Name != "" {
		name = *emp.Name
	}
	email := ""
	if emp.Email != nil {
		email = *emp.Email
	}

	return timeadmin.ReportRow{
		ID:                emp.ID,
		Name:              name,
		Email:             email,
		Image:             emp.Image,
		AdministeredHours: totals.AdministeredHours,
		RequiredHours:     totals.RequiredHours,
		VacationDays:      totals.VacationDays,
		Difference:        totals.Difference,
		Status:            totals.Status,
	}
}
