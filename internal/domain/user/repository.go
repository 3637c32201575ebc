package user

import (
	"context"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (User, error)
	// GetManager returns the direct manager of userID, or ErrUserNotFound when there is none.
	GetManager(ctx context.Context, userID int64) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
}
