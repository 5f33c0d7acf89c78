package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-board/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос; ID присваивается базой
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Update сохраняет все поля вопроса
func (r *QuestionRepo) Update(question *entity.Question) error {
	return r.db.Save(question).Error
}

// Delete удаляет вопрос. Удаление несуществующего id — ErrNotFound.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List возвращает страницу вопросов и общее количество совпадений до пагинации.
// Счётчик берётся по отфильтрованному множеству целиком, поэтому страница за
// пределами данных — это пустой срез с корректным total, а не ошибка.
func (r *QuestionRepo) List(page, perPage int, term string) ([]entity.Question, int64, error) {
	query := r.db.Model(&entity.Question{})
	if term != "" {
		query = query.Where("question ILIKE ?", "%"+term+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var questions []entity.Question
	err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// GetAllMatching возвращает все вопросы с подстрокой term (без учёта регистра)
func (r *QuestionRepo) GetAllMatching(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("question ILIKE ?", "%"+term+"%").Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории в порядке id
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetAll возвращает весь банк вопросов в порядке id
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetRandomEligible выбирает один вопрос равномерно случайно из подходящего
// множества на стороне хранилища: ORDER BY RANDOM() LIMIT 1 по уже
// отфильтрованному запросу, без материализации таблицы в память.
// Пустое множество — (nil, nil), решение об "исчерпании" принимает сервис.
func (r *QuestionRepo) GetRandomEligible(categoryID uint, excludeIDs []uint) (*entity.Question, error) {
	var question entity.Question
	query := r.db.Model(&entity.Question{})
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Order("RANDOM()").First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}
