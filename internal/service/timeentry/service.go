package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeentry"
)

type TimeEntryServiceImpl struct {
	entryRepo timeentry.TimeEntryRepository
	taskRepo  task.TaskRepository
}

func NewTimeEntryService(entryRepo timeentry.TimeEntryRepository, taskRepo task.TaskRepository) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		entryRepo: entryRepo,
		taskRepo:  taskRepo,
	}
}

// Create implements timeentry.TimeEntryService. Only the task's assignee may log hours on it.
func (s *TimeEntryServiceImpl) Create(ctx context.Context, userID int64, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, task.ErrTaskNotFound) {
			return timeentry.TimeEntryResponse{}, timeentry.ErrTaskNotFound
		}
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to get task: %w", err)
	}

	if t.AssigneeID == nil || *t.AssigneeID != userID {
		return timeentry.TimeEntryResponse{}, timeentry.ErrTaskAccessDenied
	}

	created, err := s.entryRepo.Create(ctx, timeentry.TimeEntry{
		TaskID: req.TaskID,
		UserID: userID,
		Date:   req.ParsedDate,
		Hours:  req.Hours,
		Note:   req.Note,
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	slog.DebugContext(ctx, "time entry created", "user_id", userID, "task_id", req.TaskID, "entry_id", created.ID)
	return created.ToResponse(), nil
}

// Delete implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, userID, entryID int64) error {
	entry, err := s.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return err
	}

	if entry.UserID != userID {
		return timeentry.ErrNotEntryOwner
	}

	return s.entryRepo.Delete(ctx, entryID)
}
