package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
)

// fakeProjectRepository serves the lookups the task services make. Other methods panic.
type fakeProjectRepository struct {
	project.ProjectRepository

	projects     map[int64]project.Project
	participants map[int64][]int64
}

func newFakeProjectRepository() *fakeProjectRepository {
	return &fakeProjectRepository{
		projects: map[int64]project.Project{
			7: {ID: 7, Name: "Apollo", OwnerID: alice.ID},
		},
		participants: map[int64][]int64{
			7: {alice.ID, charlie.ID},
		},
	}
}

func (f *fakeProjectRepository) GetByID(ctx context.Context, id int64) (project.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (f *fakeProjectRepository) IsParticipant(ctx context.Context, projectID, userID int64) (bool, error) {
	for _, id := range f.participants[projectID] {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

type taskFixture struct {
	svc      task.TaskService
	tasks    *fakeTaskRepository
	projects *fakeProjectRepository
}

func newTaskFixture() taskFixture {
	tasks := newFakeTaskRepository()
	projects := newFakeProjectRepository()
	return taskFixture{svc: NewTaskService(tasks, projects), tasks: tasks, projects: projects}
}

func (f taskFixture) seedProjectTask(id, creatorID int64, assigneeID *int64) {
	f.tasks.tasks[id] = task.Task{ID: id, Name: "Design", Type: task.TypeTask, CreatorID: creatorID, AssigneeID: assigneeID, ProjectID: ptr(int64(7))}
}

func TestCreateTask(t *testing.T) {
	f := newTaskFixture()

	resp, err := f.svc.CreateTask(context.Background(), charlie.ID, task.CreateTaskRequest{
		Name:      " Standup ",
		Type:      "meeting",
		StartDate: "2025-11-10T09:00:00Z",
		EndDate:   "2025-11-10T09:15:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "Standup", resp.Name)
	assert.Equal(t, task.TypeMeeting, resp.Type)
	assert.Equal(t, "2025-11-10T09:00:00Z", *resp.StartDate)
	require.NotNil(t, resp.AssigneeID)
	assert.Equal(t, charlie.ID, *resp.AssigneeID)
	assert.Nil(t, resp.ProjectID)
}

func TestCreateTask_RejectsVacation(t *testing.T) {
	f := newTaskFixture()

	_, err := f.svc.CreateTask(context.Background(), charlie.ID, task.CreateTaskRequest{
		Name: "Holiday", Type: task.TypeVacation, StartDate: "2025-11-10", EndDate: "2025-11-14",
	})
	require.Error(t, err)
	assert.Empty(t, f.tasks.created)
}

func TestCreateProjectTask(t *testing.T) {
	f := newTaskFixture()

	resp, err := f.svc.CreateProjectTask(context.Background(), alice.ID, 7, task.CreateProjectTaskRequest{
		Name: "Design", Type: task.TypeTask, AssigneeID: ptr(charlie.ID),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, int64(7), *resp.ProjectID)
	assert.Equal(t, charlie.ID, *resp.AssigneeID)
	assert.Nil(t, resp.StartDate)
}

func TestCreateProjectTask_Errors(t *testing.T) {
	cases := []struct {
		name      string
		creator   int64
		projectID int64
		assignee  *int64
		wantErr   error
	}{
		{"project missing", alice.ID, 8, nil, project.ErrProjectNotFound},
		{"creator outside project", root.ID, 7, nil, project.ErrProjectAccessDenied},
		{"assignee outside project", charlie.ID, 7, ptr(root.ID), task.ErrAssigneeNotParticipant},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newTaskFixture()

			_, err := f.svc.CreateProjectTask(context.Background(), c.creator, c.projectID, task.CreateProjectTaskRequest{
				Name: "Design", Type: task.TypeTask, AssigneeID: c.assignee,
			})
			assert.ErrorIs(t, err, c.wantErr)
			assert.Empty(t, f.tasks.created)
		})
	}
}

func TestGetTask(t *testing.T) {
	f := newTaskFixture()
	f.seedProjectTask(20, alice.ID, nil)
	f.tasks.projects[7] = &task.ProjectRef{ID: 7, OwnerID: alice.ID, ParticipantIDs: []int64{alice.ID, charlie.ID}}

	got, err := f.svc.GetTask(context.Background(), charlie.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.ID)
	require.NotNil(t, got.Project)
	assert.NotNil(t, got.TimeEntries)

	_, err = f.svc.GetTask(context.Background(), root.ID, 20)
	assert.ErrorIs(t, err, task.ErrTaskAccessDenied)

	_, err = f.svc.GetTask(context.Background(), root.ID, 404)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestGetTask_MeetingParticipant(t *testing.T) {
	f := newTaskFixture()
	f.tasks.tasks[21] = task.Task{ID: 21, Type: task.TypeMeeting, CreatorID: alice.ID}
	f.tasks.participants[21] = []task.Person{{ID: root.ID}}

	_, err := f.svc.GetTask(context.Background(), root.ID, 21)
	assert.NoError(t, err)
}

func TestAssignTask(t *testing.T) {
	f := newTaskFixture()
	f.seedProjectTask(20, charlie.ID, nil)

	resp, err := f.svc.AssignTask(context.Background(), alice.ID, 20, task.AssignTaskRequest{AssigneeID: ptr(charlie.ID)})
	require.NoError(t, err)
	require.NotNil(t, resp.AssigneeID)
	assert.Equal(t, charlie.ID, *resp.AssigneeID)

	resp, err = f.svc.AssignTask(context.Background(), charlie.ID, 20, task.AssignTaskRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp.AssigneeID)
}

func TestAssignTask_Errors(t *testing.T) {
	cases := []struct {
		name     string
		seed     func(f taskFixture)
		caller   int64
		assignee *int64
		wantErr  error
	}{
		{
			name:    "not a project task",
			seed:    func(f taskFixture) { f.tasks.tasks[20] = task.Task{ID: 20, Type: task.TypeTask, CreatorID: alice.ID} },
			caller:  alice.ID,
			wantErr: task.ErrNotProjectTask,
		},
		{
			name:    "caller neither creator nor owner",
			seed:    func(f taskFixture) { f.seedProjectTask(20, alice.ID, nil) },
			caller:  charlie.ID,
			wantErr: task.ErrAssignNotAllowed,
		},
		{
			name:     "assignee outside project",
			seed:     func(f taskFixture) { f.seedProjectTask(20, alice.ID, nil) },
			caller:   alice.ID,
			assignee: ptr(root.ID),
			wantErr:  task.ErrAssigneeNotParticipant,
		},
		{
			name:    "task missing",
			seed:    func(f taskFixture) {},
			caller:  alice.ID,
			wantErr: task.ErrTaskNotFound,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newTaskFixture()
			c.seed(f)

			_, err := f.svc.AssignTask(context.Background(), c.caller, 20, task.AssignTaskRequest{AssigneeID: c.assignee})
			assert.ErrorIs(t, err, c.wantErr)
		})
	}
}

func TestToggleTask(t *testing.T) {
	f := newTaskFixture()
	f.seedProjectTask(20, alice.ID, ptr(charlie.ID))

	resp, err := f.svc.ToggleTask(context.Background(), charlie.ID, 20)
	require.NoError(t, err)
	assert.True(t, resp.IsDone)

	resp, err = f.svc.ToggleTask(context.Background(), charlie.ID, 20)
	require.NoError(t, err)
	assert.False(t, resp.IsDone)

	_, err = f.svc.ToggleTask(context.Background(), alice.ID, 20)
	assert.ErrorIs(t, err, task.ErrNotTaskAssignee)
}

func TestDeleteTask(t *testing.T) {
	f := newTaskFixture()
	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	f.tasks.tasks[20] = task.Task{ID: 20, Type: task.TypeTask, StartDate: &start, CreatorID: charlie.ID, AssigneeID: ptr(charlie.ID)}

	assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), alice.ID, 20), task.ErrNotTaskCreator)
	require.NoError(t, f.svc.DeleteTask(context.Background(), charlie.ID, 20))
	assert.Equal(t, []int64{20}, f.tasks.deleted)
	assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), charlie.ID, 20), task.ErrTaskNotFound)
}
