package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrorCodeForbidden          ErrorCode = "FORBIDDEN"
	ErrorCodeUsernameExists     ErrorCode = "USERNAME_EXISTS"
	ErrorCodeUnknownTeam        ErrorCode = "UNKNOWN_TEAM"
	ErrorCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput       ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrInvalidCredentials - логин/пароль не совпали ни с одной учётной записью
	ErrInvalidCredentials = NewError(
		http.StatusUnauthorized,
		ErrorCodeInvalidCredentials,
		"invalid credentials",
		nil,
	)

	// ErrUnauthorized - нет активной сессии
	ErrUnauthorized = NewError(
		http.StatusUnauthorized,
		ErrorCodeUnauthorized,
		"login required",
		nil,
	)

	// ErrForbidden - роль или назначение не позволяют выполнить действие
	ErrForbidden = NewError(
		http.StatusForbidden,
		ErrorCodeForbidden,
		"operation not permitted for current user",
		nil,
	)

	// ErrUsernameExists - учётная запись с таким именем (без учёта регистра) уже есть
	ErrUsernameExists = NewError(
		http.StatusConflict,
		ErrorCodeUsernameExists,
		"user with this username already exists",
		nil,
	)

	// ErrUnknownTeam - команда не входит в фиксированный список
	ErrUnknownTeam = NewError(
		http.StatusBadRequest,
		ErrorCodeUnknownTeam,
		"unknown team",
		nil,
	)

	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// InvalidInput создаёт ошибку валидации с конкретным сообщением
func InvalidInput(message string) *Error {
	return NewError(http.StatusBadRequest, ErrorCodeInvalidInput, message, nil)
}
