package timeentry

import "time"

// TimeEntry is a number of hours a user logged against a task on one date
type TimeEntry struct {
	ID        int64
	TaskID    int64
	UserID    int64
	Date      time.Time
	Hours     float64
	Note      *string
	CreatedAt time.Time
}
