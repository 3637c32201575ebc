package task

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNotVacation     = errors.New("task is not a vacation request")
	ErrAlreadyDecided  = errors.New("vacation request was already decided")
	ErrAlreadyApproved = fmt.Errorf("%w: approved", ErrAlreadyDecided)
	ErrAlreadyRejected = fmt.Errorf("%w: rejected", ErrAlreadyDecided)
	ErrNotDirectReport = errors.New("you can only decide on vacation requests of your direct reports")

	ErrTaskAccessDenied       = errors.New("you do not have access to this task")
	ErrNotTaskCreator         = errors.New("only the task creator can modify this task")
	ErrNotTaskAssignee        = errors.New("only the assignee can change the task status")
	ErrNotProjectTask         = errors.New("only project tasks can be assigned")
	ErrAssignNotAllowed       = errors.New("only the task creator or project owner can assign tasks")
	ErrAssigneeNotParticipant = errors.New("assignee must be a project participant")
	ErrVacationNotEditable    = errors.New("vacation requests cannot be edited")
)
