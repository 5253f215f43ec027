package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/taskhub/internal/domain"
	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/service"
)

// UserHandler обрабатывает эндпоинты пользователей
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// LoginRequest представляет тело запроса на логин
type LoginRequest struct {
	ID string `json:"id" validate:"required"`
}

// LoginResponse представляет тело ответа на логин
type LoginResponse struct {
	Message     string       `json:"message"`
	RedirectURL string       `json:"redirectUrl"`
	Token       string       `json:"token"`
	User        *domain.User `json:"user"`
}

// Login обрабатывает POST /api/users/login. Пароля нет: логин по одному
// ID, но дальнейшие запросы авторизуются выданным токеном.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	token, user, err := h.authService.Login(r.Context(), req.ID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	redirectURL := "/memdash"
	if user.IsAdmin() {
		redirectURL = "/admdash"
	}

	RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Message:     "Login successful",
		RedirectURL: redirectURL,
		Token:       token,
		User:        user,
	})
}

// CreateUserRequest представляет тело запроса на создание пользователя
type CreateUserRequest struct {
	ID          string `json:"id" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,oneof=Admin Member"`
	ProjectRole string `json:"project_role" validate:"required_if=Role Member,max=100"`
}

// Create обрабатывает POST /api/users
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	user := &domain.User{
		ID:          req.ID,
		Name:        req.Name,
		Email:       req.Email,
		Role:        domain.Role(req.Role),
		ProjectRole: req.ProjectRole,
	}

	created, err := h.userService.Create(r.Context(), user)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, created)
}

// List обрабатывает GET /api/users: пользователи, сгруппированные по ролям
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.userService.ListGrouped(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, grouped)
}

// Get обрабатывает GET /api/users/{id}
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateUserRequest представляет тело запроса на обновление пользователя.
// Роль через этот путь не меняется.
type UpdateUserRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	ProjectRole string `json:"project_role" validate:"max=100"`
}

// Update обрабатывает PUT|PATCH /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if err := ValidateStruct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, string(domain.CodeValidation), err.Error())
		return
	}

	user := &domain.User{
		ID:          chi.URLParam(r, "id"),
		Name:        req.Name,
		Email:       req.Email,
		ProjectRole: req.ProjectRole,
	}

	actor := middleware.ActorFromContext(r.Context())
	updated, err := h.userService.Update(r.Context(), actor, user)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, updated)
}

// Delete обрабатывает DELETE /api/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if err := h.userService.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithMessage(w, r, http.StatusOK, "User deleted successfully")
}

// DeleteAll обрабатывает DELETE /api/users
func (h *UserHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	if err := h.userService.DeleteAll(r.Context(), actor); err != nil {
		HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
