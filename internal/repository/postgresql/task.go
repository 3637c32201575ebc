package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
)

const taskColumns = `t.id, t.name, t.description, t.type, t.start_date, t.end_date, t.is_done,
		t.is_approved, t.creator_id, t.assignee_id, t.project_id, t.created_at, t.updated_at`

const creatorColumns = `u.id, u.name, u.email, u.image, u.role, u.manager_id`

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// taskRow holds the nullable columns of a task while scanning
type taskRow struct {
	t           task.Task
	taskType    string
	description sql.NullString
	startDate   sql.NullTime
	endDate     sql.NullTime
	isApproved  sql.NullBool
	assigneeID  sql.NullInt64
	projectID   sql.NullInt64
}

func (r *taskRow) dest() []interface{} {
	return []interface{}{
		&r.t.ID,
		&r.t.Name,
		&r.description,
		&r.taskType,
		&r.startDate,
		&r.endDate,
		&r.t.IsDone,
		&r.isApproved,
		&r.t.CreatorID,
		&r.assigneeID,
		&r.projectID,
		&r.t.CreatedAt,
		&r.t.UpdatedAt,
	}
}

func (r *taskRow) build() task.Task {
	out := r.t
	out.Type = task.TaskType(r.taskType)
	out.Description = stringPtr(r.description)
	out.StartDate = timePtr(r.startDate)
	out.EndDate = timePtr(r.endDate)
	out.IsApproved = boolPtr(r.isApproved)
	out.AssigneeID = int64Ptr(r.assigneeID)
	out.ProjectID = int64Ptr(r.projectID)
	return out
}

// personRow holds the nullable columns of a task creator while scanning
type personRow struct {
	p         task.Person
	name      sql.NullString
	email     sql.NullString
	image     sql.NullString
	managerID sql.NullInt64
}

func (r *personRow) dest() []interface{} {
	return []interface{}{&r.p.ID, &r.name, &r.email, &r.image, &r.p.Role, &r.managerID}
}

func (r *personRow) build() *task.Person {
	p := r.p
	p.Name = stringPtr(r.name)
	p.Email = stringPtr(r.email)
	p.Image = stringPtr(r.image)
	p.ManagerID = int64Ptr(r.managerID)
	return &p
}

func scanTask(row pgx.Row) (task.Task, error) {
	var tr taskRow
	if err := row.Scan(tr.dest()...); err != nil {
		return task.Task{}, err
	}
	return tr.build(), nil
}

func scanTaskWithCreator(row pgx.Row) (task.Task, error) {
	var tr taskRow
	var pr personRow
	if err := row.Scan(append(tr.dest(), pr.dest()...)...); err != nil {
		return task.Task{}, err
	}
	t := tr.build()
	t.Creator = pr.build()
	return t, nil
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks AS t (
			name, description, type, start_date, end_date, is_done, is_approved,
			creator_id, assignee_id, project_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + taskColumns

	created, err := scanTask(q.QueryRow(ctx, query,
		t.Name,
		t.Description,
		string(t.Type),
		t.StartDate,
		t.EndDate,
		t.IsDone,
		t.IsApproved,
		t.CreatorID,
		t.AssigneeID,
		t.ProjectID,
	))
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}
	return t, nil
}

// GetWithCreatorForUpdate implements task.TaskRepository. Call it inside WithTransaction.
func (r *taskRepositoryImpl) GetWithCreatorForUpdate(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, ` + creatorColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.creator_id
		WHERE t.id = $1
		FOR UPDATE OF t
	`

	t, err := scanTaskWithCreator(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to lock task: %w", err)
	}
	return t, nil
}

// UpdateApproval implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateApproval(ctx context.Context, id int64, approved bool) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks AS t
		SET is_approved = $1, updated_at = NOW()
		WHERE t.id = $2
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, approved, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task approval: %w", err)
	}
	return t, nil
}

// ListPendingVacationsForManager implements task.TaskRepository.
func (r *taskRepositoryImpl) ListPendingVacationsForManager(ctx context.Context, managerID int64) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, ` + creatorColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.creator_id
		WHERE t.type = $1
		AND t.is_approved IS NULL
		AND u.manager_id = $2
		ORDER BY t.start_date ASC, t.id ASC
	`

	rows, err := q.Query(ctx, query, string(task.TypeVacation), managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending vacations: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	for rows.Next() {
		t, err := scanTaskWithCreator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending vacation: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending vacations: %w", err)
	}

	return tasks, nil
}

// GetDetails implements task.TaskRepository.
func (r *taskRepositoryImpl) GetDetails(ctx context.Context, id int64) (task.TaskDetails, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `, ` + creatorColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.creator_id
		WHERE t.id = $1
	`

	t, err := scanTaskWithCreator(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.TaskDetails{}, task.ErrTaskNotFound
		}
		return task.TaskDetails{}, fmt.Errorf("failed to get task details: %w", err)
	}

	if t.AssigneeID != nil {
		t.Assignee, err = r.getPerson(ctx, q, *t.AssigneeID)
		if err != nil {
			return task.TaskDetails{}, err
		}
	}

	participants, err := r.participantsByTask(ctx, q, []int64{t.ID})
	if err != nil {
		return task.TaskDetails{}, err
	}
	t.Participants = participants[t.ID]

	details := task.TaskDetails{Task: t}
	if t.ProjectID != nil {
		details.Project, err = r.getProjectRef(ctx, q, *t.ProjectID)
		if err != nil {
			return task.TaskDetails{}, err
		}
	}

	details.TimeEntries, err = r.listLoggedTime(ctx, q, t.ID)
	if err != nil {
		return task.TaskDetails{}, err
	}

	return details, nil
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks AS t
		SET name = $1, description = $2, type = $3, start_date = $4, end_date = $5,
			project_id = $6, assignee_id = $7, is_done = $8, updated_at = NOW()
		WHERE t.id = $9
		RETURNING ` + taskColumns

	updated, err := scanTask(q.QueryRow(ctx, query,
		t.Name,
		t.Description,
		string(t.Type),
		t.StartDate,
		t.EndDate,
		t.ProjectID,
		t.AssigneeID,
		t.IsDone,
		t.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// UpdateAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) UpdateAssignee(ctx context.Context, id int64, assigneeID *int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks AS t
		SET assignee_id = $1, updated_at = NOW()
		WHERE t.id = $2
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, assigneeID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to assign task: %w", err)
	}
	return t, nil
}

// ToggleDone implements task.TaskRepository.
func (r *taskRepositoryImpl) ToggleDone(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks AS t
		SET is_done = NOT t.is_done, updated_at = NOW()
		WHERE t.id = $1
		RETURNING ` + taskColumns

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return t, nil
}

// Delete implements task.TaskRepository. Time entries and meeting participants go with the task.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}
	return nil
}

// ListForUser implements task.TaskRepository.
func (r *taskRepositoryImpl) ListForUser(ctx context.Context, userID int64) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE t.assignee_id = $1 OR t.creator_id = $1
			OR EXISTS (
				SELECT 1 FROM meeting_participants mp
				WHERE mp.meeting_id = t.id AND mp.user_id = $1
			)
		ORDER BY t.start_date ASC NULLS LAST, t.id ASC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	tasks := []task.Task{}
	ids := []int64{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		tasks = append(tasks, t)
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	if len(ids) == 0 {
		return tasks, nil
	}

	participants, err := r.participantsByTask(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].Participants = participants[tasks[i].ID]
	}

	return tasks, nil
}

// ReplaceParticipants implements task.TaskRepository. Call it inside WithTransaction.
func (r *taskRepositoryImpl) ReplaceParticipants(ctx context.Context, taskID int64, userIDs []int64) ([]task.Person, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM meeting_participants WHERE meeting_id = $1`, taskID); err != nil {
		return nil, fmt.Errorf("failed to clear meeting participants: %w", err)
	}

	if len(userIDs) > 0 {
		query := `
			INSERT INTO meeting_participants (meeting_id, user_id)
			SELECT $1, u.id FROM users u WHERE u.id = ANY($2)
			ON CONFLICT DO NOTHING
		`
		if _, err := q.Exec(ctx, query, taskID, userIDs); err != nil {
			return nil, fmt.Errorf("failed to add meeting participants: %w", err)
		}
	}

	participants, err := r.participantsByTask(ctx, q, []int64{taskID})
	if err != nil {
		return nil, err
	}
	return participants[taskID], nil
}

func (r *taskRepositoryImpl) getPerson(ctx context.Context, q database.Querier, id int64) (*task.Person, error) {
	query := `SELECT ` + creatorColumns + ` FROM users u WHERE u.id = $1`

	var pr personRow
	if err := q.QueryRow(ctx, query, id).Scan(pr.dest()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignee: %w", err)
	}
	return pr.build(), nil
}

func (r *taskRepositoryImpl) participantsByTask(ctx context.Context, q database.Querier, taskIDs []int64) (map[int64][]task.Person, error) {
	query := `
		SELECT mp.meeting_id, ` + creatorColumns + `
		FROM meeting_participants mp
		JOIN users u ON u.id = mp.user_id
		WHERE mp.meeting_id = ANY($1)
		ORDER BY mp.meeting_id, u.id
	`

	rows, err := q.Query(ctx, query, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query meeting participants: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]task.Person)
	for rows.Next() {
		var meetingID int64
		var pr personRow
		if err := rows.Scan(append([]interface{}{&meetingID}, pr.dest()...)...); err != nil {
			return nil, fmt.Errorf("failed to scan meeting participant: %w", err)
		}
		result[meetingID] = append(result[meetingID], *pr.build())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meeting participants: %w", err)
	}

	return result, nil
}

func (r *taskRepositoryImpl) getProjectRef(ctx context.Context, q database.Querier, projectID int64) (*task.ProjectRef, error) {
	ref := task.ProjectRef{ParticipantIDs: []int64{}}
	err := q.QueryRow(ctx, `SELECT p.id, p.name, p.owner_id FROM projects p WHERE p.id = $1`, projectID).
		Scan(&ref.ID, &ref.Name, &ref.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task project: %w", err)
	}

	rows, err := q.Query(ctx, `SELECT up.user_id FROM user_projects up WHERE up.project_id = $1 ORDER BY up.user_id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project participant: %w", err)
		}
		ref.ParticipantIDs = append(ref.ParticipantIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project participants: %w", err)
	}

	return &ref, nil
}

func (r *taskRepositoryImpl) listLoggedTime(ctx context.Context, q database.Querier, taskID int64) ([]task.LoggedTime, error) {
	query := `
		SELECT te.id, te.date, te.hours::float8, te.note, ` + creatorColumns + `
		FROM time_entries te
		JOIN users u ON u.id = te.user_id
		WHERE te.task_id = $1
		ORDER BY te.date DESC, te.id DESC
	`

	rows, err := q.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query task time entries: %w", err)
	}
	defer rows.Close()

	entries := []task.LoggedTime{}
	for rows.Next() {
		var e task.LoggedTime
		var note sql.NullString
		var pr personRow
		if err := rows.Scan(append([]interface{}{&e.ID, &e.Date, &e.Hours, &note}, pr.dest()...)...); err != nil {
			return nil, fmt.Errorf("failed to scan task time entry: %w", err)
		}
		e.Note = stringPtr(note)
		e.User = *pr.build()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task time entries: %w", err)
	}

	return entries, nil
}
