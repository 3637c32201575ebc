package http

import (
	"net/http"

	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// List implements UserHandler. project_id keeps members, exclude_project_id keeps everyone else.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projectID, ok := queryID(r, "project_id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}
	excludeProjectID, ok := queryID(r, "exclude_project_id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	users, err := h.userService.ListUsers(r.Context(), user.ListFilter{ProjectID: projectID, ExcludeProjectID: excludeProjectID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}
