package timeadmin

import "time"

// StandardDailyHours is the expected workload of one working day.
const StandardDailyHours = 8

type Status string

const (
	StatusSufficient   Status = "sufficient"
	StatusInsufficient Status = "insufficient"
	StatusNone         Status = "none"
)

// Employee is a direct report together with the data gathered for one reporting window.
type Employee struct {
	ID    int64
	Name  *string
	Email *string
	Image *string

	// Relationships, already restricted to the window by the repository
	TimeEntries []TimeEntry
	Vacations   []Vacation
}

// TimeEntry carries only what the aggregation needs
type TimeEntry struct {
	Hours float64
}

// Vacation is an approved vacation task overlapping the window.
// Either date may be missing on malformed rows.
type Vacation struct {
	StartDate *time.Time
	EndDate   *time.Time
}
