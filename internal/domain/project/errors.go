package project

import "errors"

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAccessDenied  = errors.New("you do not have access to this project")
	ErrNotProjectOwner      = errors.New("only the project owner can manage this project")
	ErrProjectAlreadyClosed = errors.New("project is already closed")
	ErrCloseBeforeStart     = errors.New("project cannot be closed before its start date")
	ErrAlreadyParticipant   = errors.New("user is already a participant in this project")
	ErrNotParticipant       = errors.New("user is not a participant in this project")
	ErrCannotRemoveOwner    = errors.New("project owner cannot be removed from the project")
)
