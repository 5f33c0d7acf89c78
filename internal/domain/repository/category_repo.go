package repository

import (
	"github.com/yourusername/trivia-board/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id uint) (*entity.Category, error)
	GetAll() ([]entity.Category, error)
	Update(category *entity.Category) error

	// Delete удаляет только саму категорию. Вопросы, ссылающиеся на неё,
	// не каскадируются: ссылка слабая.
	Delete(id uint) error
}
