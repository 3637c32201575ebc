package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/workplanner/workplanner-backend-go/internal/domain/project"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	ListParticipants(w http.ResponseWriter, r *http.Request)
	AddParticipant(w http.ResponseWriter, r *http.Request)
	RemoveParticipant(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
	taskService    task.TaskService
}

func NewProjectHandler(projectService project.ProjectService, taskService task.TaskService) ProjectHandler {
	return &ProjectHandlerImpl{
		projectService: projectService,
		taskService:    taskService,
	}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "CreateProject decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.projectService.CreateProject(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Project created successfully", created)
}

// List implements ProjectHandler. Supports owner_id and participant_id filters.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := queryID(r, "owner_id")
	if !ok {
		response.BadRequest(w, "Invalid owner ID", nil)
		return
	}
	participantID, ok := queryID(r, "participant_id")
	if !ok {
		response.BadRequest(w, "Invalid participant ID", nil)
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), project.ListFilter{OwnerID: ownerID, ParticipantID: participantID})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Get implements ProjectHandler.
func (h *ProjectHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	details, err := h.projectService.GetProject(r.Context(), projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// Close implements ProjectHandler.
func (h *ProjectHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	closed, err := h.projectService.CloseProject(r.Context(), userID, projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Project closed successfully", closed)
}

// ListParticipants implements ProjectHandler.
func (h *ProjectHandlerImpl) ListParticipants(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	participants, err := h.projectService.ListParticipants(r.Context(), userID, projectID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, participants)
}

// AddParticipant implements ProjectHandler.
func (h *ProjectHandlerImpl) AddParticipant(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	var req project.AddParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "AddParticipant decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	added, err := h.projectService.AddParticipant(r.Context(), userID, projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Participant added successfully", added)
}

// RemoveParticipant implements ProjectHandler.
func (h *ProjectHandlerImpl) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}
	participantID, ok := pathID(r, "userId")
	if !ok {
		response.BadRequest(w, "Invalid user ID", nil)
		return
	}

	if err := h.projectService.RemoveParticipant(r.Context(), userID, projectID, participantID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Participant removed successfully", nil)
}

// CreateTask implements ProjectHandler.
func (h *ProjectHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	projectID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid project ID", nil)
		return
	}

	var req task.CreateProjectTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "CreateProjectTask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskService.CreateProjectTask(r.Context(), userID, projectID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", created)
}
