package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task представляет задачу, привязанную к проекту и исполнителю.
// Ссылки assigned_to и project подкреплены внешними ключами:
// задача не может ссылаться на несуществующего пользователя или проект.
type Task struct {
	TaskID      uuid.UUID  `json:"taskId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	AssignedTo  string     `json:"assignedTo"`
	Project     string     `json:"project"` // PID проекта
	Status      Status     `json:"status"`
	Comments    []string   `json:"comments"` // Упорядочены по времени добавления
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// TaskFilter описывает фильтры list-запроса задач. Пустое поле означает
// отсутствие фильтра. OwnerID ограничивает выдачу задачами проектов
// указанного администратора (серверная замена клиентской фильтрации "My Tasks").
type TaskFilter struct {
	Project    string
	AssignedTo string
	Status     Status
	OwnerID    string
}
