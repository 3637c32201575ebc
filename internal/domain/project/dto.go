package project

import (
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`

	// Parsed by Validate
	Start time.Time  `json:"-"`
	End   *time.Time `json:"-"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if len(r.Name) > 255 {
		errs.Add("name", "name must not exceed 255 characters")
	}

	var startOK bool
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if r.Start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
	}

	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		switch {
		case !ok:
			errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		case startOK && end.Before(r.Start):
			errs.Add("end_date", "end_date must not be before start_date")
		default:
			r.End = &end
		}
	}

	return errs.Err()
}

type AddParticipantRequest struct {
	UserID int64 `json:"user_id"`
}

func (r *AddParticipantRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.UserID <= 0 {
		errs.Add("user_id", "user_id is required")
	}
	return errs.Err()
}

type ProjectResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	StartDate string       `json:"start_date"`
	EndDate   *string      `json:"end_date"`
	IsClosed  bool         `json:"is_closed"`
	OwnerID   int64        `json:"owner_id"`
	CreatedAt string       `json:"created_at"`
	Owner     *task.Person `json:"owner,omitempty"`
}

func (p Project) ToResponse() ProjectResponse {
	resp := ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.StartDate.Format(validator.DateLayout),
		IsClosed:  p.IsClosed(),
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Owner:     p.Owner,
	}
	if p.EndDate != nil {
		e := p.EndDate.Format(validator.DateLayout)
		resp.EndDate = &e
	}
	return resp
}

type ParticipantResponse struct {
	ProjectID int64       `json:"project_id"`
	UserID    int64       `json:"user_id"`
	User      task.Person `json:"user"`
}

func (p Participant) ToResponse() ParticipantResponse {
	return ParticipantResponse{ProjectID: p.ProjectID, UserID: p.User.ID, User: p.User}
}

type ProjectDetailsResponse struct {
	ProjectResponse
	Participants []ParticipantResponse `json:"participants"`
	Tasks        []task.TaskResponse   `json:"tasks"`
}

func (d ProjectDetails) ToResponse() ProjectDetailsResponse {
	participants := make([]ParticipantResponse, 0, len(d.Participants))
	for _, p := range d.Participants {
		participants = append(participants, p.ToResponse())
	}
	tasks := make([]task.TaskResponse, 0, len(d.Tasks))
	for _, t := range d.Tasks {
		tasks = append(tasks, t.ToResponse())
	}
	return ProjectDetailsResponse{
		ProjectResponse: d.Project.ToResponse(),
		Participants:    participants,
		Tasks:           tasks,
	}
}
