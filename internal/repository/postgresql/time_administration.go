package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
)

type timeAdministrationRepositoryImpl struct {
	db *database.DB
}

func NewTimeAdministrationRepository(db *database.DB) timeadmin.Repository {
	return &timeAdministrationRepositoryImpl{db: db}
}

// FetchDirectReportsWithWindowData implements timeadmin.Repository.
// Employees come back ordered by id; entries and vacations are attached per employee.
func (r *timeAdministrationRepositoryImpl) FetchDirectReportsWithWindowData(ctx context.Context, managerID int64, windowStart, windowEnd time.Time) ([]timeadmin.Employee, error) {
	q := GetQuerier(ctx, r.db)

	employees, index, err := r.fetchReports(ctx, q, managerID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return employees, nil
	}

	entriesQuery := `
		SELECT te.user_id, te.hours::float8
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE u.manager_id = $1
		AND te.date BETWEEN $2 AND $3
		ORDER BY te.user_id, te.date, te.id
	`

	rows, err := q.Query(ctx, entriesQuery, managerID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var hours float64
		if err := rows.Scan(&userID, &hours); err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		if i, ok := index[userID]; ok {
			employees[i].TimeEntries = append(employees[i].TimeEntries, timeadmin.TimeEntry{Hours: hours})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entries: %w", err)
	}

	vacationsQuery := `
		SELECT t.creator_id, t.start_date, t.end_date
		FROM tasks t
		JOIN users u ON u.id = t.creator_id
		WHERE u.manager_id = $1
		AND t.type = $2
		AND t.is_approved = true
		AND t.start_date <= $3
		AND t.end_date >= $4
		ORDER BY t.creator_id, t.start_date, t.id
	`

	vrows, err := q.Query(ctx, vacationsQuery, managerID, string(task.TypeVacation), windowEnd, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacations: %w", err)
	}
	defer vrows.Close()

	for vrows.Next() {
		var creatorID int64
		var start, end sql.NullTime
		if err := vrows.Scan(&creatorID, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan vacation: %w", err)
		}
		if i, ok := index[creatorID]; ok {
			employees[i].Vacations = append(employees[i].Vacations, timeadmin.Vacation{
				StartDate: timePtr(start),
				EndDate:   timePtr(end),
			})
		}
	}
	if err := vrows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vacations: %w", err)
	}

	return employees, nil
}

func (r *timeAdministrationRepositoryImpl) fetchReports(ctx context.Context, q database.Querier, managerID int64) ([]timeadmin.Employee, map[int64]int, error) {
	query := `
		SELECT id, name, email, image
		FROM users
		WHERE manager_id = $1
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query direct reports: %w", err)
	}
	defer rows.Close()

	employees := []timeadmin.Employee{}
	index := make(map[int64]int)
	for rows.Next() {
		var emp timeadmin.Employee
		var name, email, image sql.NullString
		if err := rows.Scan(&emp.ID, &name, &email, &image); err != nil {
			return nil, nil, fmt.Errorf("failed to scan direct report: %w", err)
		}
		emp.Name = stringPtr(name)
		emp.Email = stringPtr(email)
		emp.Image = stringPtr(image)

		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating direct reports: %w", err)
	}

	return employees, index, nil
}
