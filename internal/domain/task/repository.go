package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id int64) (Task, error)
	// GetDetails loads the task with creator, assignee, meeting participants, project and time entries.
	GetDetails(ctx context.Context, id int64) (TaskDetails, error)
	// Update overwrites the editable fields of t.ID
	Update(ctx context.Context, t Task) (Task, error)
	UpdateAssignee(ctx context.Context, id int64, assigneeID *int64) (Task, error)
	ToggleDone(ctx context.Context, id int64) (Task, error)
	Delete(ctx context.Context, id int64) error

	// ListForUser returns the tasks userID created, is assigned to or attends, with their meeting participants.
	ListForUser(ctx context.Context, userID int64) ([]Task, error)
	// ReplaceParticipants sets the meeting participants of taskID. Unknown user ids are ignored.
	ReplaceParticipants(ctx context.Context, taskID int64, userIDs []int64) ([]Person, error)

	// GetWithCreatorForUpdate locks the task row until the surrounding transaction ends.
	GetWithCreatorForUpdate(ctx context.Context, id int64) (Task, error)
	UpdateApproval(ctx context.Context, id int64, approved bool) (Task, error)
	ListPendingVacationsForManager(ctx context.Context, managerID int64) ([]Task, error)
}
