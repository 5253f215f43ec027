package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/service"
)

// TeamHandler обрабатывает эндпоинты реестра команды
type TeamHandler struct {
	teamService *service.TeamService
}

// NewTeamHandler создает новый TeamHandler
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// MemberRequest представляет тело запроса на добавление/обновление участника.
// Роль в теле игнорируется: участник реестра всегда Member.
type MemberRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	ProjectRole string `json:"project_role" validate:"required,max=100"`
}

// Create обрабатывает POST /api/teams: участник добавляется в реестр
// текущего администратора, каноническая запись пользователя создается
// или обновляется в той же транзакции
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	member := &domain.Member{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		ProjectRole: req.ProjectRole,
	}

	actor := middleware.ActorFromContext(r.Context())
	created, err := h.teamService.AddMember(r.Context(), actor, member)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// List обрабатывает GET /api/teams?adminId=
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	members, err := h.teamService.ListRoster(r.Context(), actor, r.URL.Query().Get("adminId"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, members)
}

// Get обрабатывает GET /api/teams/{id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	member, err := h.teamService.GetMember(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, member)
}

// Update обрабатывает PUT|PATCH /api/teams/{id}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	// ID в пути имеет приоритет над телом
	req.ID = chi.URLParam(r, "id")
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	member := &domain.Member{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		ProjectRole: req.ProjectRole,
	}

	actor := middleware.ActorFromContext(r.Context())
	updated, err := h.teamService.UpdateMember(r.Context(), actor, member)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/teams/{id}: каскадно удаляются
// каноническая запись пользователя и все назначенные ему задачи
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if err := h.teamService.RemoveMember(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "Team member deleted successfully")
}
