package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status представляет статус проекта или задачи
type Status string

// Возможные статусы. Переходы не ограничены: любой статус может быть
// установлен в любой другой в любой момент.
const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusDone       Status = "Done"
)

// Valid возвращает true если статус входит в допустимый набор
func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Project представляет проект, принадлежащий администратору
type Project struct {
	ProjectID   uuid.UUID  `json:"projectId"` // Сгенерированный хранилищем идентификатор
	PID         string     `json:"pid"`       // Человекочитаемый уникальный идентификатор
	OwnerID     string     `json:"id"`        // ID администратора-владельца, неизменяем после создания
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	DueDate     time.Time  `json:"dueDate"`
	Status      Status     `json:"status"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
