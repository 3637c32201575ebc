package project

import (
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
)

// Project groups tasks under an owner. A project is closed once EndDate is set.
type Project struct {
	ID        int64
	Name      string
	StartDate time.Time
	EndDate   *time.Time
	OwnerID   int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Owner *task.Person
}

func (p *Project) IsClosed() bool {
	return p.EndDate != nil
}

func (p *Project) IsOwnedBy(userID int64) bool {
	return p.OwnerID == userID
}

// Participant is a member of a project. The owner is always one.
type Participant struct {
	ProjectID int64
	User      task.Person
}

type ProjectDetails struct {
	Project
	Participants []Participant
	Tasks        []task.Task
}

// ListFilter selects projects owned by OwnerID or joined by ParticipantID.
// Both set means either condition matches.
type ListFilter struct {
	OwnerID       *int64
	ParticipantID *int64
}
