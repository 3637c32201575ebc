package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
	"github.com/workplanner/workplanner-backend-go/internal/repository/postgresql"
)

type EventServiceImpl struct {
	db          *database.DB
	taskRepo    task.TaskRepository
	projectRepo project.ProjectRepository
	vacations   task.VacationService
}

func NewEventService(db *database.DB, taskRepo task.TaskRepository, projectRepo project.ProjectRepository, vacations task.VacationService) task.EventService {
	return &EventServiceImpl{
		db:          db,
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		vacations:   vacations,
	}
}

// ListEvents implements task.EventService.
func (s *EventServiceImpl) ListEvents(ctx context.Context, userID int64) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}

// SaveEvent implements task.EventService.
// New vacations go through the approval flow. Everything else is stored unassigned
// together with its meeting participants.
func (s *EventServiceImpl) SaveEvent(ctx context.Context, userID int64, req task.SaveEventRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if req.Type == task.TypeVacation {
		return s.vacations.RequestVacation(ctx, userID, task.CreateVacationRequest{
			Name:        req.Name,
			Description: req.Description,
			StartDate:   req.Start.Format(validator.DateLayout),
			EndDate:     req.End.Format(validator.DateLayout),
		})
	}

	if req.ProjectID != nil {
		if err := s.checkProjectAccess(ctx, *req.ProjectID, userID); err != nil {
			return task.TaskResponse{}, err
		}
	}

	event := task.Task{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		StartDate:   &req.Start,
		EndDate:     &req.End,
		CreatorID:   userID,
		ProjectID:   req.ProjectID,
	}

	var saved task.Task
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		if req.TaskID != nil {
			saved, err = s.update(txCtx, userID, *req.TaskID, event)
		} else {
			saved, err = s.taskRepo.Create(txCtx, event)
		}
		if err != nil {
			return err
		}

		saved.Participants, err = s.taskRepo.ReplaceParticipants(txCtx, saved.ID, req.ParticipantIDs)
		return err
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return saved.ToResponse(), nil
}

func (s *EventServiceImpl) update(ctx context.Context, userID, taskID int64, event task.Task) (task.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task.Task{}, err
	}
	if existing.CreatorID != userID {
		return task.Task{}, task.ErrNotTaskCreator
	}
	if existing.IsVacation() {
		return task.Task{}, task.ErrVacationNotEditable
	}

	event.ID = existing.ID
	event.AssigneeID = existing.AssigneeID
	event.IsDone = existing.IsDone
	return s.taskRepo.Update(ctx, event)
}

func (s *EventServiceImpl) checkProjectAccess(ctx context.Context, projectID, userID int64) error {
	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p.IsOwnedBy(userID) {
		return nil
	}
	ok, err := s.projectRepo.IsParticipant(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return project.ErrProjectAccessDenied
	}
	return nil
}
