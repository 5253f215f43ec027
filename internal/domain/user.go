package domain

import "time"

// Role представляет роль пользователя в системе
type Role string

// Возможные роли пользователя
const (
	RoleAdmin  Role = "Admin"  // Администратор: управляет проектами, задачами и командой
	RoleMember Role = "Member" // Участник: видит и обновляет назначенные ему задачи
)

// Valid возвращает true если роль входит в допустимый набор
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// User представляет каноническую запись пользователя
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Role       `json:"role"`
	ProjectRole string     `json:"project_role,omitempty"` // Обязательно для роли Member
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// IsAdmin возвращает true если пользователь является администратором
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GroupedUsers представляет список пользователей, сгруппированный по ролям
type GroupedUsers struct {
	Admin  []*User `json:"Admin"`
	Member []*User `json:"Member"`
}

// Actor представляет аутентифицированного пользователя текущего запроса.
// Все list-операции ограничивают выдачу областью видимости актора.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin возвращает true если актор является администратором
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
