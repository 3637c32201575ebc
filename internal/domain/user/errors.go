package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrManagerAccessRequired   = errors.New("manager access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrInvalidUserID           = errors.New("invalid user id claim")
)
