package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/service"
)

// ProjectHandler обрабатывает эндпоинты проектов
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler создает новый ProjectHandler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ProjectRequest представляет тело запроса на создание/обновление проекта
type ProjectRequest struct {
	PID         string `json:"pid" validate:"required,max=64"`
	OwnerID     string `json:"id" validate:"max=64"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	StartDate   string `json:"startDate" validate:"required"`
	DueDate     string `json:"dueDate" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
}

// toDomain разбирает даты и собирает доменный проект
func (req *ProjectRequest) toDomain() (*domain.Project, error) {
	startDate, err := ParseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		PID:         req.PID,
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		Status:      domain.Status(req.Status),
	}, nil
}

// Create обрабатывает POST /api/projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	project, err := req.toDomain()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	created, err := h.projectService.Create(r.Context(), actor, project)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// List обрабатывает GET /api/projects?id=: проекты текущего
// администратора по возрастанию срока
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	projects, err := h.projectService.List(r.Context(), actor, r.URL.Query().Get("id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, projects)
}

// Get обрабатывает GET /api/projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, project)
}

// Update обрабатывает PUT|PATCH /api/projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	project, err := req.toDomain()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	updated, err := h.projectService.Update(r.Context(), actor, chi.URLParam(r, "id"), project)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/projects/{id}: каскадно удаляются
// все задачи с pid проекта
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if err := h.projectService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Project deleted successfully")
}
