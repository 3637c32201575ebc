package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/comms"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/database"
	"github.com/workplanner/workplanner-backend-go/internal/repository/postgresql"
)

type VacationServiceImpl struct {
	db       *database.DB
	taskRepo task.TaskRepository
	userRepo user.UserRepository
	comms    comms.Client
}

func NewVacationService(db *database.DB, taskRepo task.TaskRepository, userRepo user.UserRepository, commsClient comms.Client) task.VacationService {
	return &VacationServiceImpl{
		db:       db,
		taskRepo: taskRepo,
		userRepo: userRepo,
		comms:    commsClient,
	}
}

// RequestVacation implements task.VacationService.
// The requester is both creator and assignee; approval stays open until the manager decides.
func (s *VacationServiceImpl) RequestVacation(ctx context.Context, creatorID int64, req task.CreateVacationRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	requester, err := s.userRepo.GetByID(ctx, creatorID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to get requester: %w", err)
	}

	assignee := creatorID
	created, err := s.taskRepo.Create(ctx, task.Task{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        task.TypeVacation,
		StartDate:   &req.Start,
		EndDate:     &req.End,
		CreatorID:   creatorID,
		AssigneeID:  &assignee,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	s.notifyManager(ctx, requester, created)

	return created.ToResponse(), nil
}

// notifyManager never fails the request; delivery problems are only logged.
func (s *VacationServiceImpl) notifyManager(ctx context.Context, requester user.User, created task.Task) {
	manager, err := s.userRepo.GetManager(ctx, requester.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			slog.InfoContext(ctx, "requester has no manager, skipping vacation notification", "user_id", requester.ID, "task_id", created.ID)
			return
		}
		slog.WarnContext(ctx, "failed to resolve manager for vacation notification", "user_id", requester.ID, "error", err)
		return
	}

	err = s.comms.SendVacationRequest(ctx, comms.RecipientFromUser(requester), comms.RecipientFromUser(manager), comms.NewTaskPayload(created))
	if err != nil {
		slog.WarnContext(ctx, "failed to send vacation request notification",
			"user_id", requester.ID,
			"manager_id", manager.ID,
			"task_id", created.ID,
			"error", err,
		)
	}
}

// ListPendingVacations implements task.VacationService.
func (s *VacationServiceImpl) ListPendingVacations(ctx context.Context, managerID int64) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.ListPendingVacationsForManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending vacations: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}
	return responses, nil
}

// ApproveVacation implements task.VacationService.
func (s *VacationServiceImpl) ApproveVacation(ctx context.Context, managerID, taskID int64) (task.TaskResponse, error) {
	return s.decide(ctx, managerID, taskID, true)
}

// RejectVacation implements task.VacationService.
func (s *VacationServiceImpl) RejectVacation(ctx context.Context, managerID, taskID int64) (task.TaskResponse, error) {
	return s.decide(ctx, managerID, taskID, false)
}

func (s *VacationServiceImpl) decide(ctx context.Context, managerID, taskID int64, approved bool) (task.TaskResponse, error) {
	var updated task.Task

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		t, err := s.taskRepo.GetWithCreatorForUpdate(txCtx, taskID)
		if err != nil {
			return err
		}

		if !t.IsVacation() {
			return task.ErrNotVacation
		}
		if !t.IsPending() {
			if *t.IsApproved {
				return task.ErrAlreadyApproved
			}
			return task.ErrAlreadyRejected
		}
		if t.Creator == nil || t.Creator.ManagerID == nil || *t.Creator.ManagerID != managerID {
			return task.ErrNotDirectReport
		}

		updated, err = s.taskRepo.UpdateApproval(txCtx, taskID, approved)
		if err != nil {
			return fmt.Errorf("failed to update vacation approval: %w", err)
		}
		updated.Creator = t.Creator
		return nil
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	slog.InfoContext(ctx, "vacation request decided", "task_id", taskID, "manager_id", managerID, "approved", approved)
	return updated.ToResponse(), nil
}
