package timeadmin

import (
	"context"
	"time"
)

// Repository defines the data access the report needs
type Repository interface {
	// FetchDirectReportsWithWindowData returns the users whose manager is managerID. Each carries
	// its time entries dated within [windowStart, windowEnd] and its approved vacation tasks
	// overlapping that window.
	FetchDirectReportsWithWindowData(ctx context.Context, managerID int64, windowStart, windowEnd time.Time) ([]Employee, error)
}
