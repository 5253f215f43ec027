package domain

import "errors"

// Доменные ошибки, отображаемые на HTTP статусы в слое handler
var (
	// ErrUserExists возвращается при попытке создать пользователя с занятым ID
	ErrUserExists = errors.New("user id already exists")

	// ErrEmailExists возвращается при попытке создать пользователя с занятым email
	ErrEmailExists = errors.New("email already exists")

	// ErrMemberExists возвращается при попытке добавить уже существующего участника
	ErrMemberExists = errors.New("team member already exists")

	// ErrProjectExists возвращается при попытке создать проект с занятым pid
	ErrProjectExists = errors.New("project id already exists")

	// ErrMemberIsAdmin возвращается при попытке добавить администратора в реестр команды
	ErrMemberIsAdmin = errors.New("cannot add an admin to a team roster")

	// ErrDueDatePast возвращается когда срок задачи при создании уже прошел
	ErrDueDatePast = errors.New("due date must be in the future")

	// ErrNotFound возвращается когда ресурс не найден
	ErrNotFound = errors.New("resource not found")

	// ErrUserNotFound возвращается когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrMemberNotFound возвращается когда участник команды не найден
	ErrMemberNotFound = errors.New("team member not found")

	// ErrProjectNotFound возвращается когда проект не найден или ID имеет неверный формат
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound возвращается когда задача не найдена или ID имеет неверный формат
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden возвращается когда запрос выходит за область видимости актора
	ErrForbidden = errors.New("forbidden")
)

// ErrorCode представляет строковые коды ошибок API
type ErrorCode string

// Коды ошибок API
const (
	CodeUserExists    ErrorCode = "USER_EXISTS"    // ID пользователя уже занят
	CodeEmailExists   ErrorCode = "EMAIL_EXISTS"   // Email уже занят
	CodeMemberExists  ErrorCode = "MEMBER_EXISTS"  // Участник уже в реестре
	CodeProjectExists ErrorCode = "PROJECT_EXISTS" // pid проекта уже занят
	CodeValidation    ErrorCode = "VALIDATION"     // Нарушено полевое ограничение
	CodeNotFound      ErrorCode = "NOT_FOUND"      // Ресурс не найден
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"   // Аутентификация не пройдена
	CodeForbidden     ErrorCode = "FORBIDDEN"      // Запрос вне области видимости
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUserExists):
		return CodeUserExists
	case errors.Is(err, ErrEmailExists):
		return CodeEmailExists
	case errors.Is(err, ErrMemberExists):
		return CodeMemberExists
	case errors.Is(err, ErrProjectExists):
		return CodeProjectExists
	case errors.Is(err, ErrMemberIsAdmin), errors.Is(err, ErrDueDatePast):
		return CodeValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	default:
		return CodeNotFound
	}
}
