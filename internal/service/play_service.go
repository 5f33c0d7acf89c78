package service

import (
	"github.com/yourusername/trivia-board/internal/domain/entity"
	"github.com/yourusername/trivia-board/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
)

// PlayService — селектор вопросов для игровой сессии. Сессия полностью на
// стороне клиента: прогресс передаётся в каждом вызове через previousIDs,
// сервер между вызовами ничего не хранит.
type PlayService struct {
	questionRepo repository.QuestionRepository
}

// NewPlayService создает новый игровой сервис
func NewPlayService(questionRepo repository.QuestionRepository) *PlayService {
	return &PlayService{questionRepo: questionRepo}
}

// NextQuestion возвращает один равномерно случайный вопрос из подходящего
// множества: категория совпадает (categoryID == 0 — все категории) и id не
// входит в previousIDs. Пустое множество — ErrNoQuestionsLeft; в частности,
// несуществующая категория даёт пустое множество, а не ErrNotFound.
//
// Между выбором вопроса и отправкой ответа вопрос может быть удалён
// параллельным запросом; выбор делается одним SELECT, поэтому клиент получает
// то, что видел этот SELECT. Гонка безобидна и не координируется.
func (s *PlayService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	question, err := s.questionRepo.GetRandomEligible(categoryID, previousIDs)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperrors.ErrNoQuestionsLeft
	}
	return question, nil
}
