package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskhub/taskhub/internal/config"
	"github.com/taskhub/taskhub/internal/handler"
	"github.com/taskhub/taskhub/internal/middleware"
	"github.com/taskhub/taskhub/internal/repository/postgres"
	"github.com/taskhub/taskhub/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	db     *pgxpool.Pool
	server *http.Server
	logger *slog.Logger
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к базе данных
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully")
	return nil
}

// connectDB устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectDB(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.db = pool
	a.logger.Info("Connected to database")
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	// Инициализируем слой репозиториев (работа с БД)
	userRepo := postgres.NewUserRepository(a.db)
	memberRepo := postgres.NewMemberRepository(a.db)
	projectRepo := postgres.NewProjectRepository(a.db)
	taskRepo := postgres.NewTaskRepository(a.db)

	// Инициализируем слой сервисов (бизнес-логика)
	authService := service.NewAuthService(
		userRepo,
		a.config.JWT.Secret,
		a.config.JWT.GetExpiration(),
	)
	userService := service.NewUserService(userRepo, memberRepo)
	teamService := service.NewTeamService(memberRepo)
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(taskRepo, projectRepo)
	dashboardService := service.NewDashboardService(a.db)

	// Инициализируем HTTP обработчики
	userHandler := handler.NewUserHandler(userService, authService)
	teamHandler := handler.NewTeamHandler(teamService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.AuthMiddleware(authService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			a.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Route("/api", func(r chi.Router) {
		// Публичные эндпоинты: регистрация и логин
		r.Post("/users/login", userHandler.Login)
		r.Post("/users", userHandler.Create)

		// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			// Эндпоинты пользователей
			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)
			r.Patch("/users/{id}", userHandler.Update)

			// Эндпоинты задач: участники видят и обновляют назначенные
			// им задачи, администраторы — задачи своих проектов
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Patch("/tasks/{id}/status", taskHandler.SetStatus)
			r.Post("/tasks/{id}/comments", taskHandler.AddComment)

			// Эндпоинт статистики
			r.Get("/dashboard", dashboardHandler.Get)

			// Проект доступен на чтение любому аутентифицированному
			// пользователю (участник открывает проект своей задачи)
			r.Get("/projects/{id}", projectHandler.Get)

			// Административные эндпоинты
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Delete("/users/{id}", userHandler.Delete)
				r.Delete("/users", userHandler.DeleteAll)

				r.Get("/projects", projectHandler.List)
				r.Post("/projects", projectHandler.Create)
				r.Put("/projects/{id}", projectHandler.Update)
				r.Patch("/projects/{id}", projectHandler.Update)
				r.Delete("/projects/{id}", projectHandler.Delete)

				r.Post("/tasks", taskHandler.Create)
				r.Put("/tasks/{id}", taskHandler.Update)
				r.Patch("/tasks/{id}", taskHandler.Update)
				r.Delete("/tasks/{id}", taskHandler.Delete)

				r.Get("/teams", teamHandler.List)
				r.Get("/teams/{id}", teamHandler.Get)
				r.Post("/teams", teamHandler.Create)
				r.Put("/teams/{id}", teamHandler.Update)
				r.Patch("/teams/{id}", teamHandler.Update)
				r.Delete("/teams/{id}", teamHandler.Delete)
			})
		})
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	// Закрываем подключения к базе данных
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
