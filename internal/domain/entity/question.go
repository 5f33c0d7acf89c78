package entity

import (
	"fmt"
	"math"

	apperrors "github.com/yourusername/trivia-board/internal/pkg/errors"
)

// Question представляет вопрос викторины.
// Поле Category — слабая ссылка на Category.ID: внешний ключ на уровне БД
// не объявляется, удаление категории не затрагивает её вопросы.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:1000;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// QuestionInput — проверенные поля для создания вопроса
type QuestionInput struct {
	Question   string
	Answer     string
	Category   uint
	Difficulty int
}

// QuestionUpdate — проверенные поля для частичного обновления вопроса.
// nil означает "поле не передано, не трогать".
type QuestionUpdate struct {
	Question   *string
	Answer     *string
	Category   *uint
	Difficulty *int
}

// ParseQuestionFields валидирует сырую карту полей (результат декодирования JSON)
// и возвращает типизированный ввод. Все четыре поля обязательны: question и answer —
// непустые строки, category и difficulty — целые положительные числа.
func ParseQuestionFields(fields map[string]interface{}) (*QuestionInput, error) {
	question, err := stringField(fields, "question")
	if err != nil {
		return nil, err
	}
	answer, err := stringField(fields, "answer")
	if err != nil {
		return nil, err
	}
	category, err := intField(fields, "category")
	if err != nil {
		return nil, err
	}
	difficulty, err := intField(fields, "difficulty")
	if err != nil {
		return nil, err
	}
	return &QuestionInput{
		Question:   question,
		Answer:     answer,
		Category:   uint(category),
		Difficulty: difficulty,
	}, nil
}

// ParseQuestionUpdate валидирует произвольное подмножество изменяемых полей.
// Пустая карта — ошибка валидации, а не тихий no-op.
func ParseQuestionUpdate(fields map[string]interface{}) (*QuestionUpdate, error) {
	upd := &QuestionUpdate{}
	touched := false

	if _, ok := fields["question"]; ok {
		question, err := stringField(fields, "question")
		if err != nil {
			return nil, err
		}
		upd.Question = &question
		touched = true
	}
	if _, ok := fields["answer"]; ok {
		answer, err := stringField(fields, "answer")
		if err != nil {
			return nil, err
		}
		upd.Answer = &answer
		touched = true
	}
	if _, ok := fields["category"]; ok {
		category, err := intField(fields, "category")
		if err != nil {
			return nil, err
		}
		c := uint(category)
		upd.Category = &c
		touched = true
	}
	if _, ok := fields["difficulty"]; ok {
		difficulty, err := intField(fields, "difficulty")
		if err != nil {
			return nil, err
		}
		upd.Difficulty = &difficulty
		touched = true
	}

	if !touched {
		return nil, fmt.Errorf("%w: no updatable fields provided", apperrors.ErrValidation)
	}
	return upd, nil
}

// Apply накладывает переданные поля на вопрос
func (u *QuestionUpdate) Apply(q *Question) {
	if u.Question != nil {
		q.Question = *u.Question
	}
	if u.Answer != nil {
		q.Answer = *u.Answer
	}
	if u.Category != nil {
		q.Category = *u.Category
	}
	if u.Difficulty != nil {
		q.Difficulty = *u.Difficulty
	}
}

// stringField извлекает обязательную непустую строку
func stringField(fields map[string]interface{}, name string) (string, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: field %q is required", apperrors.ErrValidation, name)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string", apperrors.ErrValidation, name)
	}
	if s == "" {
		return "", fmt.Errorf("%w: field %q must not be empty", apperrors.ErrValidation, name)
	}
	return s, nil
}

// intField извлекает обязательное целое положительное число.
// JSON-числа приходят как float64, поэтому проверяем целочисленность явно.
func intField(fields map[string]interface{}, name string) (int, error) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("%w: field %q is required", apperrors.ErrValidation, name)
	}
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: field %q must be an integer", apperrors.ErrValidation, name)
	}
	if f < 1 {
		return 0, fmt.Errorf("%w: field %q must be positive", apperrors.ErrValidation, name)
	}
	return int(f), nil
}
