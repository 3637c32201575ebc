package user

import "context"

type UserService interface {
	ListUsers(ctx context.Context, filter ListFilter) ([]UserResponse, error)
}
