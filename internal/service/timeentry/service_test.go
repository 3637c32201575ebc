package timeentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeentry"
)

type fakeEntryRepository struct {
	entries map[int64]timeentry.TimeEntry
	deleted []int64
	nextID  int64
}

func (f *fakeEntryRepository) Create(ctx context.Context, e timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = time.Date(2025, 11, 3, 18, 0, 0, 0, time.UTC)
	f.entries[e.ID] = e
	return e, nil
}

func (f *fakeEntryRepository) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
	}
	return e, nil
}

func (f *fakeEntryRepository) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.entries, id)
	return nil
}

// fakeTaskRepository only answers GetByID, the one lookup the time entry service makes
type fakeTaskRepository struct {
	task.TaskRepository

	tasks map[int64]task.Task
	err   error
}

func (f *fakeTaskRepository) GetByID(ctx context.Context, id int64) (task.Task, error) {
	if f.err != nil {
		return task.Task{}, f.err
	}
	t, ok := f.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func newService() (timeentry.TimeEntryService, *fakeEntryRepository, *fakeTaskRepository) {
	assignee := int64(2)
	entries := &fakeEntryRepository{entries: map[int64]timeentry.TimeEntry{}}
	tasks := &fakeTaskRepository{tasks: map[int64]task.Task{
		4: {ID: 4, Name: "Build", Type: task.TypeTask, AssigneeID: &assignee},
		5: {ID: 5, Name: "Unassigned", Type: task.TypeTask},
	}}
	return NewTimeEntryService(entries, tasks), entries, tasks
}

func TestCreate(t *testing.T) {
	svc, entries, _ := newService()
	note := "pairing"

	resp, err := svc.Create(context.Background(), 2, timeentry.CreateTimeEntryRequest{TaskID: 4, Date: "2025-11-03", Hours: 7.5, Note: &note})
	require.NoError(t, err)

	assert.Equal(t, int64(4), resp.TaskID)
	assert.Equal(t, int64(2), resp.UserID)
	assert.Equal(t, "2025-11-03", resp.Date)
	assert.Equal(t, 7.5, resp.Hours)
	assert.Equal(t, "pairing", *resp.Note)
	assert.Len(t, entries.entries, 1)
}

func TestCreate_Errors(t *testing.T) {
	cases := []struct {
		name    string
		userID  int64
		req     timeentry.CreateTimeEntryRequest
		wantErr error
	}{
		{"task missing", 2, timeentry.CreateTimeEntryRequest{TaskID: 99, Date: "2025-11-03", Hours: 1}, timeentry.ErrTaskNotFound},
		{"other assignee", 3, timeentry.CreateTimeEntryRequest{TaskID: 4, Date: "2025-11-03", Hours: 1}, timeentry.ErrTaskAccessDenied},
		{"unassigned task", 2, timeentry.CreateTimeEntryRequest{TaskID: 5, Date: "2025-11-03", Hours: 1}, timeentry.ErrTaskAccessDenied},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, entries, _ := newService()

			_, err := svc.Create(context.Background(), c.userID, c.req)
			assert.ErrorIs(t, err, c.wantErr)
			assert.Empty(t, entries.entries)
		})
	}
}

func TestCreate_ValidationRunsFirst(t *testing.T) {
	svc, _, tasks := newService()
	tasks.err = errors.New("must not be called")

	_, err := svc.Create(context.Background(), 2, timeentry.CreateTimeEntryRequest{TaskID: 4, Date: "2025-11-03", Hours: 0})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "must not be called")
}

func TestCreate_TaskLookupFailure(t *testing.T) {
	svc, _, tasks := newService()
	dbErr := errors.New("timeout")
	tasks.err = dbErr

	_, err := svc.Create(context.Background(), 2, timeentry.CreateTimeEntryRequest{TaskID: 4, Date: "2025-11-03", Hours: 1})
	assert.ErrorIs(t, err, dbErr)
}

func TestDelete(t *testing.T) {
	svc, entries, _ := newService()
	entries.entries[7] = timeentry.TimeEntry{ID: 7, UserID: 2}

	require.NoError(t, svc.Delete(context.Background(), 2, 7))
	assert.Equal(t, []int64{7}, entries.deleted)
}

func TestDelete_NotOwner(t *testing.T) {
	svc, entries, _ := newService()
	entries.entries[7] = timeentry.TimeEntry{ID: 7, UserID: 2}

	assert.ErrorIs(t, svc.Delete(context.Background(), 3, 7), timeentry.ErrNotEntryOwner)
	assert.Empty(t, entries.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _, _ := newService()

	assert.ErrorIs(t, svc.Delete(context.Background(), 2, 7), timeentry.ErrTimeEntryNotFound)
}
