package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-board/internal/domain/entity"
	"github.com/yourusername/trivia-board/internal/service"
)

func TestNextQuestion_ReturnsRandomEligible(t *testing.T) {
	// Arrange: категория и накопленные исключения доходят до хранилища как есть
	questionRepo := new(MockQuestionRepo)
	handler := NewPlayHandler(service.NewPlayService(questionRepo))

	questionRepo.On("GetRandomEligible", uint(5), []uint{1, 2}).Return(&entity.Question{
		ID:         3,
		Question:   "Hematology is a branch of medicine involving the study of what?",
		Answer:     "Blood",
		Category:   5,
		Difficulty: 4,
	}, nil)

	body := map[string]interface{}{
		"previous_questions": []uint{1, 2},
		"quiz_category":      map[string]interface{}{"id": 5, "type": "Science"},
	}

	// Act
	c, w := newTestGinContext(http.MethodPost, "/quizzes", body)
	handler.NextQuestion(c)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	question := resp["question"].(map[string]interface{})
	assert.Equal(t, float64(3), question["id"])
	assert.Equal(t, float64(5), question["category"])
	questionRepo.AssertExpectations(t)
}

func TestNextQuestion_ExhaustedReturnsNullQuestion(t *testing.T) {
	// Arrange: пустое подходящее множество — это не ошибка, а конец игры
	questionRepo := new(MockQuestionRepo)
	handler := NewPlayHandler(service.NewPlayService(questionRepo))

	questionRepo.On("GetRandomEligible", uint(5), []uint{1, 2, 3}).Return(nil, nil)

	body := map[string]interface{}{
		"previous_questions": []uint{1, 2, 3},
		"quiz_category":      map[string]interface{}{"id": 5, "type": "Science"},
	}

	// Act
	c, w := newTestGinContext(http.MethodPost, "/quizzes", body)
	handler.NextQuestion(c)

	// Assert: 200 с question: null, не 404
	assert.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	require.Contains(t, resp, "question")
	assert.Nil(t, resp["question"])
}

func TestNextQuestion_InvalidBodyIsBadRequest(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	handler := NewPlayHandler(service.NewPlayService(questionRepo))

	c, w := newTestGinContext(http.MethodPost, "/quizzes", nil)
	handler.NextQuestion(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
