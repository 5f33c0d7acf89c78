package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется для синтаксически корректного, но семантически
	// недопустимого ввода. Зарезервирована: текущие потоки её не порождают.
	ErrUnprocessable = errors.New("unprocessable resource")

	// ErrNoQuestionsLeft используется селектором викторины, когда множество
	// подходящих вопросов пусто. Это не ErrNotFound: "вопросы закончились",
	// а не "неверный идентификатор".
	ErrNoQuestionsLeft = errors.New("no eligible questions left")
)
