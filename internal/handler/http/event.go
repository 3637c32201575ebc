package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
)

type EventHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService task.EventService
}

func NewEventHandler(eventService task.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

// List implements EventHandler.
func (h *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	events, err := h.eventService.ListEvents(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, events)
}

// Save implements EventHandler.
func (h *EventHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req task.SaveEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "SaveEvent decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.eventService.SaveEvent(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if req.TaskID != nil {
		response.SuccessWithMessage(w, "Event updated successfully", saved)
		return
	}
	response.Created(w, "Event created successfully", saved)
}
