package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-board/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
)

// sessionQuestionRepo — репозиторий с фиксированным банком вопросов,
// выбирающий случайный элемент подходящего множества, как это делает
// хранилище через ORDER BY RANDOM(). Нужен для сессионных тестов, где
// mock с заранее заданными ответами не выразит накопление исключений.
type sessionQuestionRepo struct {
	MockQuestionRepository
	questions []entity.Question
}

func (r *sessionQuestionRepo) GetRandomEligible(categoryID uint, excludeIDs []uint) (*entity.Question, error) {
	excluded := make(map[uint]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var eligible []entity.Question
	for _, q := range r.questions {
		if categoryID != 0 && q.Category != categoryID {
			continue
		}
		if excluded[q.ID] {
			continue
		}
		eligible = append(eligible, q)
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	q := eligible[rand.Intn(len(eligible))]
	return &q, nil
}

func TestPlayService_NextQuestion_ReturnsEligible(t *testing.T) {
	// Arrange
	repo := &sessionQuestionRepo{questions: []entity.Question{
		{ID: 1, Category: 5, Question: "Q1", Answer: "A1", Difficulty: 1},
	}}
	svc := NewPlayService(repo)

	// Act
	question, err := svc.NextQuestion(5, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), question.ID)
}

func TestPlayService_NextQuestion_NeverReturnsExcluded(t *testing.T) {
	// Arrange
	repo := &sessionQuestionRepo{questions: []entity.Question{
		{ID: 1, Category: 5},
		{ID: 2, Category: 5},
		{ID: 3, Category: 5},
	}}
	svc := NewPlayService(repo)

	// Act & Assert: при исключённых 1 и 3 единственный допустимый ответ — 2
	for i := 0; i < 20; i++ {
		question, err := svc.NextQuestion(5, []uint{1, 3})
		require.NoError(t, err)
		assert.Equal(t, uint(2), question.ID)
	}
}

func TestPlayService_QuizSession_NoRepeatsUntilExhausted(t *testing.T) {
	// Arrange: ровно 3 вопроса в категории 5 и посторонний вопрос другой категории
	repo := &sessionQuestionRepo{questions: []entity.Question{
		{ID: 1, Category: 5},
		{ID: 2, Category: 5},
		{ID: 3, Category: 5},
		{ID: 4, Category: 9},
	}}
	svc := NewPlayService(repo)

	// Act: клиент накапливает previous_questions между вызовами
	var previous []uint
	seen := make(map[uint]bool)
	for i := 0; i < 3; i++ {
		question, err := svc.NextQuestion(5, previous)
		require.NoError(t, err)
		assert.Equal(t, uint(5), question.Category, "вопрос вне запрошенной категории")
		assert.False(t, seen[question.ID], "повтор вопроса %d", question.ID)
		seen[question.ID] = true
		previous = append(previous, question.ID)
	}

	// Assert: четвёртый вызов с исключёнными {1,2,3} — исчерпание
	_, err := svc.NextQuestion(5, previous)
	assert.ErrorIs(t, err, apperrors.ErrNoQuestionsLeft)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound, "исчерпание не должно выглядеть как NotFound")
}

func TestPlayService_NextQuestion_AllCategories(t *testing.T) {
	// categoryID == 0 — игра по всем категориям
	repo := &sessionQuestionRepo{questions: []entity.Question{
		{ID: 1, Category: 2},
		{ID: 2, Category: 7},
	}}
	svc := NewPlayService(repo)

	question, err := svc.NextQuestion(0, []uint{1})

	require.NoError(t, err)
	assert.Equal(t, uint(2), question.ID)
}

func TestPlayService_NextQuestion_UnknownCategoryIsExhausted(t *testing.T) {
	// Несуществующая категория даёт пустое множество, а не ошибку поиска
	repo := &sessionQuestionRepo{questions: []entity.Question{
		{ID: 1, Category: 5},
	}}
	svc := NewPlayService(repo)

	_, err := svc.NextQuestion(777, nil)

	assert.ErrorIs(t, err, apperrors.ErrNoQuestionsLeft)
}
