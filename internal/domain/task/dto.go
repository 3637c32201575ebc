package task

import (
	"strings"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	var startOK, endOK bool
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if r.Start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}

	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if r.End, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
	}

	if startOK && endOK && r.End.Before(r.Start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

// CreateTaskRequest creates a personal TASK or MEETING. Vacations have their own endpoint.
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Type        TaskType `json:"type"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	validateName(&errs, r.Name)
	r.Type = normalizeType(r.Type)
	if r.Type != TypeTask && r.Type != TypeMeeting {
		errs.Add("type", "type must be TASK or MEETING")
	}

	var startOK, endOK bool
	r.Start, startOK = parseDateTime(&errs, "start_date", r.StartDate)
	r.End, endOK = parseDateTime(&errs, "end_date", r.EndDate)
	if startOK && endOK && !r.End.After(r.Start) {
		errs.Add("end_date", "end_date must be after start_date")
	}

	return errs.Err()
}

// CreateProjectTaskRequest creates an undated task inside a project
type CreateProjectTaskRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Type        TaskType `json:"type"`
	AssigneeID  *int64   `json:"assignee_id,omitempty"`
}

func (r *CreateProjectTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	validateName(&errs, r.Name)
	r.Type = normalizeType(r.Type)
	if r.Type != TypeTask && r.Type != TypeMeeting {
		errs.Add("type", "type must be TASK or MEETING")
	}
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		errs.Add("assignee_id", "assignee_id must be a positive integer")
	}

	return errs.Err()
}

// AssignTaskRequest sets the assignee. A null or missing assignee_id unassigns the task.
type AssignTaskRequest struct {
	AssigneeID *int64 `json:"assignee_id"`
}

func (r *AssignTaskRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.AssigneeID != nil && *r.AssigneeID <= 0 {
		errs.Add("assignee_id", "assignee_id must be a positive integer")
	}
	return errs.Err()
}

// SaveEventRequest creates a calendar event, or edits the event TaskID
type SaveEventRequest struct {
	TaskID         *int64   `json:"task_id,omitempty"`
	Name           string   `json:"name"`
	Description    *string  `json:"description,omitempty"`
	Type           TaskType `json:"type"`
	ProjectID      *int64   `json:"project_id,omitempty"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	ParticipantIDs []int64  `json:"participant_ids,omitempty"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *SaveEventRequest) Validate() error {
	var errs validator.ValidationErrors

	validateName(&errs, r.Name)
	r.Type = normalizeType(r.Type)
	switch r.Type {
	case TypeTask, TypeMeeting:
	case TypeVacation:
		if r.TaskID != nil {
			errs.Add("type", "vacation requests cannot be edited")
		}
		if len(r.ParticipantIDs) > 0 {
			errs.Add("participant_ids", "vacation requests cannot have participants")
		}
	default:
		errs.Add("type", "type must be TASK, MEETING or VACATION")
	}

	if r.TaskID != nil && *r.TaskID <= 0 {
		errs.Add("task_id", "task_id must be a positive integer")
	}
	if r.ProjectID != nil && *r.ProjectID <= 0 {
		errs.Add("project_id", "project_id must be a positive integer")
	}
	for _, id := range r.ParticipantIDs {
		if id <= 0 {
			errs.Add("participant_ids", "participant_ids must be positive integers")
			break
		}
	}

	var startOK, endOK bool
	r.Start, startOK = parseDateTime(&errs, "start_date", r.StartDate)
	r.End, endOK = parseDateTime(&errs, "end_date", r.EndDate)
	if startOK && endOK && r.End.Before(r.Start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	return errs.Err()
}

func validateName(errs *validator.ValidationErrors, name string) {
	if validator.IsEmpty(name) {
		errs.Add("name", "name is required")
	}
	if len(name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}
}

func normalizeType(t TaskType) TaskType {
	return TaskType(strings.ToUpper(strings.TrimSpace(string(t))))
}

func parseDateTime(errs *validator.ValidationErrors, field, value string) (time.Time, bool) {
	if validator.IsEmpty(value) {
		errs.Add(field, field+" is required")
		return time.Time{}, false
	}
	t, ok := validator.IsValidDateTime(value)
	if !ok {
		errs.Add(field, field+" must be an RFC 3339 timestamp or YYYY-MM-DD date")
	}
	return t, ok
}

type TaskResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	Type         TaskType `json:"type"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsDone       bool     `json:"is_done"`
	IsApproved   *bool    `json:"is_approved"`
	CreatorID    int64    `json:"creator_id"`
	AssigneeID   *int64   `json:"assignee_id"`
	ProjectID    *int64   `json:"project_id"`
	CreatedAt    string   `json:"created_at"`
	Creator      *Person  `json:"creator,omitempty"`
	Assignee     *Person  `json:"assignee,omitempty"`
	Participants []Person `json:"participants,omitempty"`
}

// ToResponse formats vacation dates as YYYY-MM-DD, other dates and timestamps as RFC3339
func (t Task) ToResponse() TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		Type:         t.Type,
		IsDone:       t.IsDone,
		IsApproved:   t.IsApproved,
		CreatorID:    t.CreatorID,
		AssigneeID:   t.AssigneeID,
		ProjectID:    t.ProjectID,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		Creator:      t.Creator,
		Assignee:     t.Assignee,
		Participants: t.Participants,
	}
	layout := time.RFC3339
	if t.IsVacation() {
		layout = validator.DateLayout
	}
	if t.StartDate != nil {
		s := t.StartDate.Format(layout)
		resp.StartDate = &s
	}
	if t.EndDate != nil {
		e := t.EndDate.Format(layout)
		resp.EndDate = &e
	}
	return resp
}

type LoggedTimeResponse struct {
	ID    int64   `json:"id"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Note  *string `json:"note"`
	User  Person  `json:"user"`
}

type TaskDetailsResponse struct {
	TaskResponse
	Project     *ProjectRef          `json:"project"`
	TimeEntries []LoggedTimeResponse `json:"time_entries"`
}

func (d TaskDetails) ToResponse() TaskDetailsResponse {
	entries := make([]LoggedTimeResponse, 0, len(d.TimeEntries))
	for _, e := range d.TimeEntries {
		entries = append(entries, LoggedTimeResponse{
			ID:    e.ID,
			Date:  e.Date.Format(validator.DateLayout),
			Hours: e.Hours,
			Note:  e.Note,
			User:  e.User,
		})
	}
	return TaskDetailsResponse{
		TaskResponse: d.Task.ToResponse(),
		Project:      d.Project,
		TimeEntries:  entries,
	}
}
