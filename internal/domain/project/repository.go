package project

import (
	"context"
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	// GetByID loads the project with its owner
	GetByID(ctx context.Context, id int64) (Project, error)
	List(ctx context.Context, filter ListFilter) ([]Project, error)
	// Close sets the end date, or returns ErrProjectAlreadyClosed when one is already set.
	Close(ctx context.Context, id int64, endDate time.Time) (Project, error)

	ListParticipants(ctx context.Context, projectID int64) ([]Participant, error)
	IsParticipant(ctx context.Context, projectID, userID int64) (bool, error)
	AddParticipant(ctx context.Context, projectID, userID int64) (Participant, error)
	RemoveParticipant(ctx context.Context, projectID, userID int64) error

	ListTasks(ctx context.Context, projectID int64) ([]task.Task, error)
}
