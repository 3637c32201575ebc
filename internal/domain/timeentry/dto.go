package timeentry

import (
	"time"

	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

const MaxHoursPerEntry = 24

type CreateTimeEntryRequest struct {
	TaskID int64   `json:"task_id"`
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Note   *string `json:"note,omitempty"`

	// Parsed by Validate
	ParsedDate time.Time `json:"-"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TaskID <= 0 {
		errs.Add("task_id", "task_id is required")
	}

	if validator.IsEmpty(r.Date) {
		errs.Add("date", "date is required")
	} else if d, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be in YYYY-MM-DD format")
	} else {
		r.ParsedDate = d
	}

	if r.Hours <= 0 {
		errs.Add("hours", "hours must be a positive number")
	} else if r.Hours > MaxHoursPerEntry {
		errs.Add("hours", "hours must not exceed 24")
	}

	return errs.Err()
}

type TimeEntryResponse struct {
	ID        int64   `json:"id"`
	TaskID    int64   `json:"task_id"`
	UserID    int64   `json:"user_id"`
	Date      string  `json:"date"`
	Hours     float64 `json:"hours"`
	Note      *string `json:"note"`
	CreatedAt string  `json:"created_at"`
}

func (e TimeEntry) ToResponse() TimeEntryResponse {
	return TimeEntryResponse{
		ID:        e.ID,
		TaskID:    e.TaskID,
		UserID:    e.UserID,
		Date:      e.Date.Format(validator.DateLayout),
		Hours:     e.Hours,
		Note:      e.Note,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
