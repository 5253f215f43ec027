package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskhub/taskhub/internal/domain"
)

// UserRepository определяет методы для работы с каноническими записями пользователей
type UserRepository interface {
	// Create создает нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)

	// List возвращает всех пользователей, отсортированных по имени
	List(ctx context.Context) ([]*domain.User, error)

	// Update обновляет имя, email и project_role пользователя
	Update(ctx context.Context, user *domain.User) error

	// Delete удаляет пользователя вместе с его реестрами, проектами и задачами
	// в одной транзакции
	Delete(ctx context.Context, userID string) error

	// DeleteAll удаляет всех пользователей и все зависимые записи
	DeleteAll(ctx context.Context) error
}

// MemberRepository определяет методы для работы с реестром команды.
// Каждая мутация затрагивает и запись реестра, и каноническую запись
// пользователя в одной транзакции.
type MemberRepository interface {
	// Create добавляет участника в реестр и создает/обновляет каноническую запись
	Create(ctx context.Context, member *domain.Member) error

	// GetByID получает участника по ID
	GetByID(ctx context.Context, memberID string) (*domain.Member, error)

	// ListByAdmin возвращает реестр указанного администратора
	ListByAdmin(ctx context.Context, adminID string) ([]*domain.Member, error)

	// Update обновляет запись реестра и каноническую запись пользователя
	Update(ctx context.Context, member *domain.Member) error

	// Delete удаляет участника, его каноническую запись и все назначенные
	// ему задачи в одной транзакции
	Delete(ctx context.Context, memberID string) error
}

// ProjectRepository определяет методы для работы с проектами
type ProjectRepository interface {
	// Create создает новый проект
	Create(ctx context.Context, project *domain.Project) error

	// GetByID получает проект по сгенерированному хранилищем ID
	GetByID(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)

	// GetOwnerByPID возвращает ID администратора-владельца проекта с данным pid
	GetOwnerByPID(ctx context.Context, pid string) (string, error)

	// ListByOwner возвращает проекты администратора по возрастанию срока
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)

	// Update обновляет проект; pid и владелец неизменяемы
	Update(ctx context.Context, project *domain.Project) error

	// Delete удаляет проект и все задачи с его pid в одной транзакции
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// TaskRepository определяет методы для работы с задачами
type TaskRepository interface {
	// Create создает новую задачу
	Create(ctx context.Context, task *domain.Task) error

	// GetByID получает задачу с комментариями по ID
	GetByID(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)

	// List возвращает задачи по фильтру по возрастанию срока
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	// Update обновляет задачу
	Update(ctx context.Context, task *domain.Task) error

	// Delete удаляет задачу вместе с комментариями
	Delete(ctx context.Context, taskID uuid.UUID) error

	// SetStatus обновляет статус задачи
	SetStatus(ctx context.Context, taskID uuid.UUID, status domain.Status) error

	// AddComment добавляет комментарий в конец списка комментариев задачи
	AddComment(ctx context.Context, taskID uuid.UUID, comment string) error
}
