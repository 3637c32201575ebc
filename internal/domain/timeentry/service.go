package timeentry

import "context"

type TimeEntryService interface {
	Create(ctx context.Context, userID int64, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	Delete(ctx context.Context, userID, entryID int64) error
}
