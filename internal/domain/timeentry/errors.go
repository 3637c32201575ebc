package timeentry

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskAccessDenied  = errors.New("you do not have access to this task")
	ErrTimeEntryNotFound = errors.New("time entry not found")
	ErrNotEntryOwner     = errors.New("you can only delete your own time entries")
)
