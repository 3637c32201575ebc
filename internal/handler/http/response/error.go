package response

import (
	"errors"
	"net/http"

	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeadmin"
	"github.com/workplanner/workplanner-backend-go/internal/domain/timeentry"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	// Invalid report parameters wrap their field errors
	case errors.Is(err, timeadmin.ErrInvalidParameters):
		var details map[string]string
		if errors.As(err, &validationErrs) {
			details = validationErrs.ToMap()
		}
		BadRequest(w, "Valid year and month (1-12) are required", details)
	case errors.As(err, &validationErrs):
		ValidationError(w, validationErrs.ToMap())

	// Time administration
	case errors.Is(err, timeadmin.ErrUpstreamFetchFailure):
		InternalServerError(w, "Failed to fetch time administration data")
	case errors.Is(err, timeadmin.ErrInvalidRange):
		BadRequest(w, "Invalid reporting period", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInvalidUserID):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Only managers can access this resource")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, timeentry.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotVacation):
		BadRequest(w, "Task is not a vacation request", nil)
	case errors.Is(err, task.ErrAlreadyApproved):
		BadRequest(w, "Vacation request already approved", nil)
	case errors.Is(err, task.ErrAlreadyRejected):
		BadRequest(w, "Vacation request already rejected", nil)
	case errors.Is(err, task.ErrAlreadyDecided):
		BadRequest(w, "Vacation request already decided", nil)
	case errors.Is(err, task.ErrNotDirectReport):
		Forbidden(w, "You can only decide on vacation requests of your direct reports")
	case errors.Is(err, task.ErrTaskAccessDenied):
		Forbidden(w, "You do not have access to this task")
	case errors.Is(err, task.ErrNotTaskCreator):
		Forbidden(w, "Only the task creator can modify this task")
	case errors.Is(err, task.ErrNotTaskAssignee):
		Forbidden(w, "You do not have permission to modify this task")
	case errors.Is(err, task.ErrAssignNotAllowed):
		Forbidden(w, "Only the task creator or project owner can assign tasks")
	case errors.Is(err, task.ErrNotProjectTask):
		BadRequest(w, "Only project tasks can be assigned", nil)
	case errors.Is(err, task.ErrAssigneeNotParticipant):
		BadRequest(w, "Assignee must be a project participant", nil)
	case errors.Is(err, task.ErrVacationNotEditable):
		BadRequest(w, "Vacation requests cannot be edited", nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectAccessDenied):
		Forbidden(w, "You do not have access to this project")
	case errors.Is(err, project.ErrNotProjectOwner):
		Forbidden(w, "Only the project owner can manage this project")
	case errors.Is(err, project.ErrProjectAlreadyClosed):
		BadRequest(w, "Project is already closed", nil)
	case errors.Is(err, project.ErrCloseBeforeStart):
		BadRequest(w, "End date cannot be earlier than start date", nil)
	case errors.Is(err, project.ErrAlreadyParticipant):
		BadRequest(w, "User is already a participant in this project", nil)
	case errors.Is(err, project.ErrNotParticipant):
		NotFound(w, "User is not a participant in this project")
	case errors.Is(err, project.ErrCannotRemoveOwner):
		BadRequest(w, "Project owner cannot be removed from the project", nil)

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTaskAccessDenied):
		Forbidden(w, "You do not have access to this task")
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrNotEntryOwner):
		Forbidden(w, "You can only delete your own time entries")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
