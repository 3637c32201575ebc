package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	taskRepo    task.TaskRepository
	projectRepo project.ProjectRepository
}

func NewTaskService(taskRepo task.TaskRepository, projectRepo project.ProjectRepository) task.TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

// CreateTask implements task.TaskService.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, creatorID int64, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	assignee := creatorID
	created, err := s.taskRepo.Create(ctx, task.Task{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		StartDate:   &req.Start,
		EndDate:     &req.End,
		CreatorID:   creatorID,
		AssigneeID:  &assignee,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return created.ToResponse(), nil
}

// CreateProjectTask implements task.TaskService.
func (s *TaskServiceImpl) CreateProjectTask(ctx context.Context, creatorID, projectID int64, req task.CreateProjectTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	p, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	member, err := s.isMember(ctx, p, creatorID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !member {
		return task.TaskResponse{}, project.ErrProjectAccessDenied
	}

	if req.AssigneeID != nil {
		ok, err := s.projectRepo.IsParticipant(ctx, projectID, *req.AssigneeID)
		if err != nil {
			return task.TaskResponse{}, err
		}
		if !ok {
			return task.TaskResponse{}, task.ErrAssigneeNotParticipant
		}
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		CreatorID:   creatorID,
		AssigneeID:  req.AssigneeID,
		ProjectID:   &p.ID,
	})
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create project task: %w", err)
	}

	return created.ToResponse(), nil
}

// GetTask implements task.TaskService.
func (s *TaskServiceImpl) GetTask(ctx context.Context, userID, taskID int64) (task.TaskDetailsResponse, error) {
	d, err := s.taskRepo.GetDetails(ctx, taskID)
	if err != nil {
		return task.TaskDetailsResponse{}, err
	}
	if !d.CanView(userID) {
		return task.TaskDetailsResponse{}, task.ErrTaskAccessDenied
	}
	return d.ToResponse(), nil
}

// AssignTask implements task.TaskService.
// Only project tasks can be assigned, by their creator or the project owner, to a project participant.
func (s *TaskServiceImpl) AssignTask(ctx context.Context, userID, taskID int64, req task.AssignTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if t.ProjectID == nil {
		return task.TaskResponse{}, task.ErrNotProjectTask
	}

	p, err := s.projectRepo.GetByID(ctx, *t.ProjectID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if t.CreatorID != userID && !p.IsOwnedBy(userID) {
		return task.TaskResponse{}, task.ErrAssignNotAllowed
	}

	if req.AssigneeID != nil {
		ok, err := s.projectRepo.IsParticipant(ctx, p.ID, *req.AssigneeID)
		if err != nil {
			return task.TaskResponse{}, err
		}
		if !ok {
			return task.TaskResponse{}, task.ErrAssigneeNotParticipant
		}
	}

	updated, err := s.taskRepo.UpdateAssignee(ctx, taskID, req.AssigneeID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to assign task: %w", err)
	}

	slog.InfoContext(ctx, "task assigned", "task_id", taskID, "user_id", userID, "assignee_id", req.AssigneeID)
	return updated.ToResponse(), nil
}

// ToggleTask implements task.TaskService.
func (s *TaskServiceImpl) ToggleTask(ctx context.Context, userID, taskID int64) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, err
	}
	if !t.IsAssignedTo(userID) {
		return task.TaskResponse{}, task.ErrNotTaskAssignee
	}

	updated, err := s.taskRepo.ToggleDone(ctx, taskID)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	return updated.ToResponse(), nil
}

// DeleteTask implements task.TaskService.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, userID, taskID int64) error {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if t.CreatorID != userID {
		return task.ErrNotTaskCreator
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "task deleted", "task_id", taskID, "user_id", userID)
	return nil
}

func (s *TaskServiceImpl) isMember(ctx context.Context, p project.Project, userID int64) (bool, error) {
	if p.IsOwnedBy(userID) {
		return true, nil
	}
	return s.projectRepo.IsParticipant(ctx, p.ID, userID)
}
