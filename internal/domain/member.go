package domain

import "time"

// Member представляет запись участника в реестре команды администратора.
// ID участника всегда совпадает с ID канонической записи в Identity Store:
// обе записи создаются и изменяются в одной транзакции.
type Member struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"` // Всегда Member, форсируется при записи
	ProjectRole string     `json:"project_role"`
	AdminID     string     `json:"adminId"` // Администратор-владелец реестра
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
