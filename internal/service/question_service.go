package service

import (
	"fmt"

	"github.com/yourusername/trivia-board/internal/domain/entity"
	"github.com/yourusername/trivia-board/internal/domain/repository"
)

// QuestionService предоставляет методы для работы с банком вопросов
type QuestionService struct {
	questionRepo repository.QuestionRepository
	maxPerPage   int
}

// NewQuestionService создает новый сервис вопросов.
// maxPerPage — верхняя граница размера страницы (по умолчанию 10).
func NewQuestionService(questionRepo repository.QuestionRepository, maxPerPage int) *QuestionService {
	if maxPerPage < 1 {
		maxPerPage = 10
	}
	return &QuestionService{
		questionRepo: questionRepo,
		maxPerPage:   maxPerPage,
	}
}

// CreateQuestion создает вопрос из уже проверенного ввода
func (s *QuestionService) CreateQuestion(input *entity.QuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

// GetQuestion возвращает вопрос по ID
func (s *QuestionService) GetQuestion(id uint) (*entity.Question, error) {
	return s.questionRepo.GetByID(id)
}

// UpdateQuestion применяет частичное обновление к существующему вопросу.
// Частично применённых результатов не бывает: поля накладываются на копию
// в памяти и сохраняются одним Save.
func (s *QuestionService) UpdateQuestion(id uint, upd *entity.QuestionUpdate) (*entity.Question, error) {
	question, err := s.questionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	upd.Apply(question)
	if err := s.questionRepo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return question, nil
}

// DeleteQuestion удаляет вопрос безвозвратно
func (s *QuestionService) DeleteQuestion(id uint) error {
	return s.questionRepo.Delete(id)
}

// ListQuestions возвращает страницу вопросов с опциональным поиском по подстроке.
// page < 1 трактуется как 1; perPage < 1 — как максимум; perPage сверх максимума
// ограничивается максимумом. total — размер отфильтрованного множества до
// пагинации, сколько бы элементов ни попало на страницу.
func (s *QuestionService) ListQuestions(page, perPage int, term string) ([]entity.Question, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > s.maxPerPage {
		perPage = s.maxPerPage
	}
	return s.questionRepo.List(page, perPage, term)
}

// SearchQuestions возвращает все вопросы, содержащие term как подстроку
// (без учёта регистра), без пагинации
func (s *QuestionService) SearchQuestions(term string) ([]entity.Question, int64, error) {
	questions, err := s.questionRepo.GetAllMatching(term)
	if err != nil {
		return nil, 0, err
	}
	return questions, int64(len(questions)), nil
}

// AllQuestions возвращает весь банк вопросов (для экспорта)
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	return s.questionRepo.GetAll()
}
