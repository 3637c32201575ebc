package task

import "time"

type TaskType string

const (
	TypeTask     TaskType = "TASK"
	TypeMeeting  TaskType = "MEETING"
	TypeVacation TaskType = "VACATION"
)

// Task is a unit of planned work. Vacations are tasks of TypeVacation whose
// IsApproved stays nil until the creator's manager decides.
type Task struct {
	ID          int64
	Name        string
	Description *string
	Type        TaskType
	StartDate   *time.Time
	EndDate     *time.Time
	IsDone      bool
	IsApproved  *bool
	CreatorID   int64
	AssigneeID  *int64
	ProjectID   *int64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships
	Creator      *Person
	Assignee     *Person
	Participants []Person
}

// Person is the subset of a user embedded in task responses
type Person struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Image     *string `json:"image"`
	Role      string  `json:"role"`
	ManagerID *int64  `json:"manager_id"`
}

func (t *Task) IsVacation() bool {
	return t.Type == TypeVacation
}

func (t *Task) IsMeeting() bool {
	return t.Type == TypeMeeting
}

func (t *Task) IsAssignedTo(userID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// HasParticipant reports whether userID was invited to the meeting.
func (t *Task) HasParticipant(userID int64) bool {
	for _, p := range t.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// IsPending reports whether no approval decision was made yet.
func (t *Task) IsPending() bool {
	return t.IsApproved == nil
}

// ProjectRef is the project a task belongs to, with the ids of its participants
type ProjectRef struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	OwnerID        int64   `json:"owner_id"`
	ParticipantIDs []int64 `json:"participant_ids"`
}

// HasMember reports whether userID owns or participates in the project.
func (p *ProjectRef) HasMember(userID int64) bool {
	if p.OwnerID == userID {
		return true
	}
	for _, id := range p.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// LoggedTime is a time entry booked on a task
type LoggedTime struct {
	ID    int64
	Date  time.Time
	Hours float64
	Note  *string
	User  Person
}

// TaskDetails is a task with everything its detail view shows
type TaskDetails struct {
	Task
	Project     *ProjectRef
	TimeEntries []LoggedTime
}

// CanView reports whether userID created, is assigned to, shares the project of or
// was invited to the task.
func (d *TaskDetails) CanView(userID int64) bool {
	if d.CreatorID == userID || d.IsAssignedTo(userID) {
		return true
	}
	if d.Project != nil && d.Project.HasMember(userID) {
		return true
	}
	return d.IsMeeting() && d.HasParticipant(userID)
}
