package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-board/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
	"github.com/yourusername/trivia-board/internal/service"
)

// PlayHandler обрабатывает игровые запросы викторины
type PlayHandler struct {
	playService *service.PlayService
}

// NewPlayHandler создает новый игровой обработчик
func NewPlayHandler(playService *service.PlayService) *PlayHandler {
	return &PlayHandler{playService: playService}
}

// QuizRequest представляет запрос следующего вопроса. Прогресс сессии целиком
// на клиенте: previous_questions накапливает уже показанные id.
// quiz_category.id == 0 означает игру по всем категориям.
type QuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      struct {
		ID   uint   `json:"id"`
		Type string `json:"type"`
	} `json:"quiz_category"`
}

// NextQuestion возвращает один случайный ещё не показанный вопрос.
// Исчерпание множества — 200 с question: null, клиент завершает игру.
// POST /quizzes
func (h *PlayHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question, err := h.playService.NextQuestion(req.QuizCategory.ID, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoQuestionsLeft) {
			c.JSON(http.StatusOK, dto.QuizResponse{Question: nil})
			return
		}
		respondError(c, err)
		return
	}

	resp := dto.NewQuestionResponse(question)
	c.JSON(http.StatusOK, dto.QuizResponse{Question: &resp})
}
