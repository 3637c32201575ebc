package task

import "context"

type VacationService interface {
	RequestVacation(ctx context.Context, creatorID int64, req CreateVacationRequest) (TaskResponse, error)
	ListPendingVacations(ctx context.Context, managerID int64) ([]TaskResponse, error)
	ApproveVacation(ctx context.Context, managerID, taskID int64) (TaskResponse, error)
	RejectVacation(ctx context.Context, managerID, taskID int64) (TaskResponse, error)
}

type TaskService interface {
	// CreateTask creates a personal task or meeting assigned to its creator
	CreateTask(ctx context.Context, creatorID int64, req CreateTaskRequest) (TaskResponse, error)
	// CreateProjectTask requires the creator and the optional assignee to belong to the project
	CreateProjectTask(ctx context.Context, creatorID, projectID int64, req CreateProjectTaskRequest) (TaskResponse, error)
	GetTask(ctx context.Context, userID, taskID int64) (TaskDetailsResponse, error)
	AssignTask(ctx context.Context, userID, taskID int64, req AssignTaskRequest) (TaskResponse, error)
	ToggleTask(ctx context.Context, userID, taskID int64) (TaskResponse, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// EventService backs the calendar: everything a user created or is assigned to.
type EventService interface {
	ListEvents(ctx context.Context, userID int64) ([]TaskResponse, error)
	// SaveEvent creates an event, or updates it when req.TaskID is set
	SaveEvent(ctx context.Context, userID int64, req SaveEventRequest) (TaskResponse, error)
}
