package project

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

func ptr[T any](v T) *T { return &v }

func TestCreateProjectRequest_Validate(t *testing.T) {
	t.Run("open ended", func(t *testing.T) {
		req := CreateProjectRequest{Name: "Apollo", StartDate: "2025-11-01"}
		require.NoError(t, req.Validate())
		assert.Equal(t, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC), req.Start)
		assert.Nil(t, req.End)
	})

	t.Run("with end date", func(t *testing.T) {
		req := CreateProjectRequest{Name: "Apollo", StartDate: "2025-11-01", EndDate: ptr("2025-11-01")}
		require.NoError(t, req.Validate())
		require.NotNil(t, req.End)
		assert.True(t, req.End.Equal(req.Start))
	})

	cases := []struct {
		name  string
		req   CreateProjectRequest
		field string
	}{
		{"missing name", CreateProjectRequest{StartDate: "2025-11-01"}, "name"},
		{"missing start", CreateProjectRequest{Name: "x"}, "start_date"},
		{"bad start", CreateProjectRequest{Name: "x", StartDate: "01.11.2025"}, "start_date"},
		{"bad end", CreateProjectRequest{Name: "x", StartDate: "2025-11-01", EndDate: ptr("soon")}, "end_date"},
		{"end before start", CreateProjectRequest{Name: "x", StartDate: "2025-11-10", EndDate: ptr("2025-11-01")}, "end_date"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestAddParticipantRequest_Validate(t *testing.T) {
	assert.NoError(t, (&AddParticipantRequest{UserID: 3}).Validate())
	assert.Error(t, (&AddParticipantRequest{}).Validate())
}

func TestProjectDetails_ToResponse(t *testing.T) {
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	owner := task.Person{ID: 1, Name: ptr("Alice"), Role: "MANAGER"}
	d := ProjectDetails{
		Project: Project{
			ID:        7,
			Name:      "Apollo",
			StartDate: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
			OwnerID:   1,
			CreatedAt: time.Date(2025, 10, 30, 12, 0, 0, 0, time.UTC),
			Owner:     &owner,
		},
		Participants: []Participant{{ProjectID: 7, User: owner}},
		Tasks:        []task.Task{{ID: 11, Name: "Design", Type: task.TypeTask, CreatorID: 1}},
	}

	resp := d.ToResponse()
	assert.Equal(t, "2025-11-01", resp.StartDate)
	require.NotNil(t, resp.EndDate)
	assert.Equal(t, "2025-12-31", *resp.EndDate)
	assert.True(t, resp.IsClosed)
	assert.Equal(t, "2025-10-30T12:00:00Z", resp.CreatedAt)
	require.Len(t, resp.Participants, 1)
	assert.Equal(t, int64(1), resp.Participants[0].UserID)
	require.Len(t, resp.Tasks, 1)
	assert.Equal(t, int64(11), resp.Tasks[0].ID)
}

func TestProject_IsOwnedBy(t *testing.T) {
	p := Project{OwnerID: 5}
	assert.True(t, p.IsOwnedBy(5))
	assert.False(t, p.IsOwnedBy(6))
	assert.False(t, p.IsClosed())
}
