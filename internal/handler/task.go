package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/service"
)

// TaskHandler обрабатывает эндпоинты задач
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler создает новый TaskHandler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// TaskRequest представляет тело запроса на создание/обновление задачи
type TaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	DueDate     string `json:"dueDate" validate:"required"`
	AssignedTo  string `json:"assignedTo" validate:"required,max=64"`
	Project     string `json:"project" validate:"required,max=64"`
	Status      string `json:"status" validate:"omitempty,oneof='To Do' 'In Progress' 'Done'"`
}

// toDomain разбирает дату и собирает доменную задачу
func (req *TaskRequest) toDomain() (*domain.Task, error) {
	dueDate, err := ParseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		AssignedTo:  req.AssignedTo,
		Project:     req.Project,
		Status:      domain.Status(req.Status),
	}, nil
}

// Create обрабатывает POST /api/tasks. Статус по умолчанию To Do,
// срок должен быть в будущем.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	task, err := req.toDomain()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	created, err := h.taskService.Create(r.Context(), actor, task)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// List обрабатывает GET /api/tasks?project=&assignedTo=&status=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.TaskFilter{
		Project:    r.URL.Query().Get("project"),
		AssignedTo: r.URL.Query().Get("assignedTo"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := ParseStatus(raw)
		if err != nil {
			RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
			return
		}
		filter.Status = status
	}

	actor := middleware.ActorFromContext(r.Context())
	tasks, err := h.taskService.List(r.Context(), actor, filter)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get обрабатывает GET /api/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	task, err := h.taskService.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// Update обрабатывает PUT|PATCH /api/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	task, err := req.toDomain()
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	updated, err := h.taskService.Update(r.Context(), actor, chi.URLParam(r, "id"), task)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if err := h.taskService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Task deleted successfully")
}

// SetStatusRequest представляет тело запроса на смену статуса задачи
type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='To Do' 'In Progress' 'Done'"`
}

// SetStatus обрабатывает PATCH /api/tasks/{id}/status. Переходы между
// статусами не ограничены.
func (h *TaskHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	task, err := h.taskService.SetStatus(r.Context(), actor, chi.URLParam(r, "id"), domain.Status(req.Status))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}

// AddCommentRequest представляет тело запроса на добавление комментария
type AddCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// AddComment обрабатывает POST /api/tasks/{id}/comments
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	task, err := h.taskService.AddComment(r.Context(), actor, chi.URLParam(r, "id"), req.Comment)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, task)
}
