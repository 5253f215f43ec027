package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/taskhub/taskhub/internal/domain"
)

var validate = validator.New()

// ValidateStruct проверяет полевые ограничения DTO запроса и возвращает
// человекочитаемое описание первого уровня нарушений
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "required_if":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "max":
			msgs = append(msgs, field+" must be at most "+fieldErr.Param()+" characters")
		case "oneof":
			msgs = append(msgs, field+" must be one of: "+fieldErr.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return fmt.Errorf("%s", strings.Join(msgs, ", "))
}

// dateLayouts перечисляет принимаемые форматы дат: краткая дата формы
// и полный RFC3339
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate разбирает дату из тела запроса
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

// ParseStatus проверяет принадлежность статуса допустимому набору
func ParseStatus(value string) (domain.Status, error) {
	status := domain.Status(value)
	if !status.Valid() {
		return "", fmt.Errorf("invalid status %q", value)
	}
	return status, nil
}
