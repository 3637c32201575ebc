package timeadmin

import (
	"fmt"

	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

type TimeAdministrationRequest struct {
	ManagerID int64 `json:"manager_id"`
	Year      int   `json:"year"`
	Month     int   `json:"month"`
}

func (r *TimeAdministrationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.InRange(r.Month, 1, 12) {
		errs.Add("month", "month must be between 1 and 12")
	}

	if !validator.InRange(r.Year, 1, 9999) {
		errs.Add("year", "year must be between 1 and 9999")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParameters, errs)
	}
	return nil
}

// ReportRow is one employee's line in the time administration report
type ReportRow struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Image             *string `json:"image"`
	AdministeredHours float64 `json:"administeredHours"`
	RequiredHours     float64 `json:"requiredHours"`
	VacationDays      int     `json:"vacationDays"`
	Difference        float64 `json:"difference"`
	Status            Status  `json:"status"`
}

type Report struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	PeriodStart      string `json:"periodStart"`
	PeriodEnd        string `json:"periodEnd"`
	TotalWorkingDays int    `json:"totalWorkingDays"`

	Rows []ReportRow `json:"rows"`
}
