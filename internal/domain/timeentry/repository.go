package timeentry

import "context"

type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id int64) (TimeEntry, error)
	Delete(ctx context.Context, id int64) error
}
