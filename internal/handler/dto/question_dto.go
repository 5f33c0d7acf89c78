package dto

import (
	"github.com/yourusername/trivia-board/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionListResponse представляет список вопросов с агрегатами.
// TotalQuestions — размер отфильтрованного множества до пагинации.
// CurrentCategory равен nil для общих списков и метке категории для выборки
// по категории; ключ сериализуется всегда, включая null.
type QuestionListResponse struct {
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      map[uint]string    `json:"categories,omitempty"`
	CurrentCategory *string            `json:"current_category"`
}

// QuizResponse представляет ответ игрового эндпоинта.
// Question == nil означает, что подходящие вопросы исчерпаны.
type QuizResponse struct {
	Question *QuestionResponse `json:"question"`
}

// CategoriesResponse представляет карту всех категорий
type CategoriesResponse struct {
	Categories map[uint]string `json:"categories"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionListResponse создает DTO для списка вопросов
func NewQuestionListResponse(questions []entity.Question, total int64, categories map[uint]string, currentCategory *string) QuestionListResponse {
	items := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, NewQuestionResponse(&questions[i]))
	}
	return QuestionListResponse{
		Questions:       items,
		TotalQuestions:  total,
		Categories:      categories,
		CurrentCategory: currentCategory,
	}
}
