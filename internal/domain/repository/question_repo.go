package repository

import (
	"github.com/yourusername/trivia-board/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Update(question *entity.Question) error
	Delete(id uint) error

	// List возвращает страницу вопросов и общее количество совпадений ДО пагинации.
	// term фильтрует по подстроке текста вопроса без учёта регистра; пустой term
	// означает отсутствие фильтра. Порядок стабильный, по id.
	List(page, perPage int, term string) ([]entity.Question, int64, error)

	// GetAllMatching возвращает все вопросы, содержащие term как подстроку
	// без учёта регистра, без пагинации
	GetAllMatching(term string) ([]entity.Question, error)

	// GetByCategory возвращает все вопросы категории без пагинации
	GetByCategory(categoryID uint) ([]entity.Question, error)

	// GetAll возвращает весь банк вопросов в порядке id (для экспорта)
	GetAll() ([]entity.Question, error)

	// GetRandomEligible возвращает один равномерно случайный вопрос из множества
	// подходящих: категория совпадает (categoryID == 0 — без фильтра) и id не входит
	// в excludeIDs. Возвращает (nil, nil), когда подходящих вопросов нет.
	GetRandomEligible(categoryID uint, excludeIDs []uint) (*entity.Question, error)
}
