package entity

import (
	"fmt"
	"strings"

	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
)

// Category представляет категорию вопросов
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// ValidateCategoryType проверяет отображаемую метку категории
func ValidateCategoryType(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", fmt.Errorf("%w: field \"type\" must not be empty", apperrors.ErrValidation)
	}
	return label, nil
}

// CategoryMap строит отображение id -> метка для ответов API
func CategoryMap(categories []Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
