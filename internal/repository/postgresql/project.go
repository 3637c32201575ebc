package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
)

const projectColumns = `p.id, p.name, p.start_date, p.end_date, p.owner_id, p.created_at, p.updated_at`

const ownerColumns = `o.id, o.name, o.email, o.image, o.role, o.manager_id`

const uniqueViolation = "23505"

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

type projectRow struct {
	p       project.Project
	endDate sql.NullTime
}

func (r *projectRow) dest() []interface{} {
	return []interface{}{
		&r.p.ID,
		&r.p.Name,
		&r.p.StartDate,
		&r.endDate,
		&r.p.OwnerID,
		&r.p.CreatedAt,
		&r.p.UpdatedAt,
	}
}

func (r *projectRow) build() project.Project {
	out := r.p
	out.EndDate = timePtr(r.endDate)
	return out
}

func scanProject(row pgx.Row) (project.Project, error) {
	var pr projectRow
	if err := row.Scan(pr.dest()...); err != nil {
		return project.Project{}, err
	}
	return pr.build(), nil
}

func scanProjectWithOwner(row pgx.Row) (project.Project, error) {
	var pr projectRow
	var owner personRow
	if err := row.Scan(append(pr.dest(), owner.dest()...)...); err != nil {
		return project.Project{}, err
	}
	p := pr.build()
	p.Owner = owner.build()
	return p, nil
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects AS p (name, start_date, end_date, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + projectColumns

	created, err := scanProject(q.QueryRow(ctx, query, p.Name, p.StartDate, p.EndDate, p.OwnerID))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id int64) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `, ` + ownerColumns + `
		FROM projects p
		JOIN users o ON o.id = p.owner_id
		WHERE p.id = $1
	`

	p, err := scanProjectWithOwner(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}
	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context, filter project.ListFilter) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + projectColumns + `, ` + ownerColumns + `
		FROM projects p
		JOIN users o ON o.id = p.owner_id
	`

	var conditions []string
	args := []interface{}{}
	argIndex := 1

	if filter.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("p.owner_id = $%d", argIndex))
		args = append(args, *filter.OwnerID)
		argIndex++
	}
	if filter.ParticipantID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM user_projects up WHERE up.project_id = p.id AND up.user_id = $%d)", argIndex))
		args = append(args, *filter.ParticipantID)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " OR ")
	}
	query += " ORDER BY p.start_date DESC, p.id DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		p, err := scanProjectWithOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

// Close implements project.ProjectRepository.
func (r *projectRepositoryImpl) Close(ctx context.Context, id int64, endDate time.Time) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects AS p
		SET end_date = $1, updated_at = NOW()
		WHERE p.id = $2 AND p.end_date IS NULL
		RETURNING ` + projectColumns

	p, err := scanProject(q.QueryRow(ctx, query, endDate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectAlreadyClosed
		}
		return project.Project{}, fmt.Errorf("failed to close project: %w", err)
	}
	return p, nil
}

// ListParticipants implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListParticipants(ctx context.Context, projectID int64) ([]project.Participant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT up.project_id, ` + creatorColumns + `
		FROM user_projects up
		JOIN users u ON u.id = up.user_id
		WHERE up.project_id = $1
		ORDER BY u.id
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []project.Participant{}
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", err)
	}

	return participants, nil
}

// IsParticipant implements project.ProjectRepository.
func (r *projectRepositoryImpl) IsParticipant(ctx context.Context, projectID, userID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS (SELECT 1 FROM user_projects WHERE project_id = $1 AND user_id = $2)`

	var exists bool
	if err := q.QueryRow(ctx, query, projectID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check participant: %w", err)
	}
	return exists, nil
}

// AddParticipant implements project.ProjectRepository.
func (r *projectRepositoryImpl) AddParticipant(ctx context.Context, projectID, userID int64) (project.Participant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH ins AS (
			INSERT INTO user_projects (project_id, user_id)
			VALUES ($1, $2)
			RETURNING project_id, user_id
		)
		SELECT ins.project_id, ` + creatorColumns + `
		FROM ins
		JOIN users u ON u.id = ins.user_id
	`

	p, err := scanParticipant(q.QueryRow(ctx, query, projectID, userID))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return project.Participant{}, project.ErrAlreadyParticipant
		}
		return project.Participant{}, fmt.Errorf("failed to add participant: %w", err)
	}
	return p, nil
}

// RemoveParticipant implements project.ProjectRepository.
func (r *projectRepositoryImpl) RemoveParticipant(ctx context.Context, projectID, userID int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM user_projects WHERE project_id = $1 AND user_id = $2`, projectID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotParticipant
	}
	return nil
}

// ListTasks implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListTasks(ctx context.Context, projectID int64) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.project_id = $1 ORDER BY t.id`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project tasks: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project tasks: %w", err)
	}

	return tasks, nil
}

func scanParticipant(row pgx.Row) (project.Participant, error) {
	var p project.Participant
	var pr personRow
	if err := row.Scan(append([]interface{}{&p.ProjectID}, pr.dest()...)...); err != nil {
		return project.Participant{}, err
	}
	p.User = *pr.build()
	return p, nil
}
