package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-board/internal/domain/entity"
	"github.com/yourusername/trivia-board/internal/domain/repository"
)

// categoriesCacheKey — ключ кеша для карты категорий
const categoriesCacheKey = "categories:all"

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil — тогда кеширование отключено.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает карту id -> метка всех категорий.
// Результат кешируется; промах или недоступный кеш прозрачно уходят в БД.
func (s *CategoryService) ListCategories() (map[uint]string, error) {
	if s.cacheRepo != nil {
		var cached map[uint]string
		if err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	result := entity.CategoryMap(categories)

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, result, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Не удалось записать категории в кеш: %v", err)
		}
	}
	return result, nil
}

// CreateCategory создает новую категорию
func (s *CategoryService) CreateCategory(label string) (*entity.Category, error) {
	label, err := entity.ValidateCategoryType(label)
	if err != nil {
		return nil, err
	}
	category := &entity.Category{Type: label}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.invalidateCache()
	return category, nil
}

// UpdateCategory обновляет метку категории
func (s *CategoryService) UpdateCategory(id uint, label string) (*entity.Category, error) {
	label, err := entity.ValidateCategoryType(label)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	category.Type = label
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	s.invalidateCache()
	return category, nil
}

// DeleteCategory удаляет категорию. Вопросы, ссылающиеся на неё, остаются
// нетронутыми и продолжают хранить её id: ссылка слабая, каскада нет.
func (s *CategoryService) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateCache()
	return nil
}

// QuestionsByCategory возвращает все вопросы категории, их количество и метку
// категории. ErrNotFound — только когда сама категория не существует; пустая
// категория — это нормальный результат с нулевым total.
func (s *CategoryService) QuestionsByCategory(id uint) ([]entity.Question, int64, string, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, 0, "", err
	}
	questions, err := s.questionRepo.GetByCategory(id)
	if err != nil {
		return nil, 0, "", err
	}
	return questions, int64(len(questions)), category.Type, nil
}

// invalidateCache сбрасывает кеш карты категорий после мутаций
func (s *CategoryService) invalidateCache() {
	if s.cacheRepo == nil {
		return
	}
	if err := s.cacheRepo.Delete(categoriesCacheKey); err != nil {
		log.Printf("[CategoryService] Не удалось сбросить кеш категорий: %v", err)
	}
}
