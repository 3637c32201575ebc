package project

import "context"

type ProjectService interface {
	// CreateProject makes the caller owner and first participant
	CreateProject(ctx context.Context, ownerID int64, req CreateProjectRequest) (ProjectResponse, error)
	ListProjects(ctx context.Context, filter ListFilter) ([]ProjectResponse, error)
	GetProject(ctx context.Context, projectID int64) (ProjectDetailsResponse, error)
	CloseProject(ctx context.Context, userID, projectID int64) (ProjectResponse, error)

	// ListParticipants omits the caller
	ListParticipants(ctx context.Context, userID, projectID int64) ([]ParticipantResponse, error)
	AddParticipant(ctx context.Context, ownerID, projectID int64, req AddParticipantRequest) (ParticipantResponse, error)
	RemoveParticipant(ctx context.Context, ownerID, projectID, userID int64) error
}
