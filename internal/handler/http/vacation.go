package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
)

type VacationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type VacationHandlerImpl struct {
	vacationService task.VacationService
}

func NewVacationHandler(vacationService task.VacationService) VacationHandler {
	return &VacationHandlerImpl{vacationService: vacationService}
}

// Create implements VacationHandler.
func (h *VacationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "CreateVacation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.vacationService.RequestVacation(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vacation request created successfully", created)
}

// ListPending implements VacationHandler.
func (h *VacationHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	managerID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	pending, err := h.vacationService.ListPendingVacations(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// Approve implements VacationHandler.
func (h *VacationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

// Reject implements VacationHandler.
func (h *VacationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *VacationHandlerImpl) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	managerID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || taskID <= 0 {
		response.BadRequest(w, "Invalid task ID", nil)
		return
	}

	var updated task.TaskResponse
	if approve {
		updated, err = h.vacationService.ApproveVacation(r.Context(), managerID, taskID)
	} else {
		updated, err = h.vacationService.RejectVacation(r.Context(), managerID, taskID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if approve {
		response.SuccessWithMessage(w, "Vacation request approved successfully", updated)
		return
	}
	response.SuccessWithMessage(w, "Vacation request rejected successfully", updated)
}
