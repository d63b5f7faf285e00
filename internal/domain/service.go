package domain

import "context"

// FeedbackService - интерфейс бизнес-логики трекера обратной связи.
// Все операции кроме Login и стартовых принимают явную сессию пользователя.
//
//go:generate mockery --name=FeedbackService --output=../mocks --outpkg=mocks --filename=feedback_service_mock.go
type FeedbackService interface {
	// SeedTeamMembers идемпотентно заполняет состав команд
	SeedTeamMembers(ctx context.Context) error

	// EnsureDefaultAdmin создаёт администратора по умолчанию, если его ещё нет
	EnsureDefaultAdmin(ctx context.Context, username, password string) error

	// Login проверяет логин (без учёта регистра) и пароль и открывает сессию
	Login(ctx context.Context, username, password string) (*Session, error)

	// ListTeams возвращает команды, доступные пользователю
	ListTeams(ctx context.Context, sess *Session) ([]string, error)

	// GetTeamMembers возвращает участников команды, о которых пользователь может оставить отзыв
	GetTeamMembers(ctx context.Context, sess *Session, team string) ([]string, error)

	// AddFeedback создаёт запись обратной связи
	AddFeedback(ctx context.Context, sess *Session, input *AddFeedbackInput) (*FeedbackEntry, error)

	// ListFeedback возвращает видимые пользователю записи
	ListFeedback(ctx context.Context, sess *Session, filter FeedbackFilter) ([]FeedbackEntry, error)

	// GroupFeedback группирует видимые записи по участнику и ревьюверу
	GroupFeedback(ctx context.Context, sess *Session, filter FeedbackFilter) ([]FeedbackGroup, error)

	// UpdateFeedback меняет статус и текст записи
	UpdateFeedback(ctx context.Context, sess *Session, input *UpdateFeedbackInput) (*FeedbackEntry, error)

	// DeleteFeedback физически удаляет запись (только администратор)
	DeleteFeedback(ctx context.Context, sess *Session, id int64) error

	// ExportFeedback выгружает видимые записи в xlsx или csv
	ExportFeedback(ctx context.Context, sess *Session, filter FeedbackFilter, format ExportFormat) (*Export, error)

	// CreateUser создаёт учётную запись (только администратор)
	CreateUser(ctx context.Context, sess *Session, input *CreateUserInput) (*User, error)

	// UpdateUser частично обновляет учётную запись (только администратор)
	UpdateUser(ctx context.Context, sess *Session, input *UpdateUserInput) (*User, error)

	// ListUsers возвращает учётные записи, опционально по роли (только администратор)
	ListUsers(ctx context.Context, sess *Session, role Role) ([]User, error)

	// SetAssignedMembers задаёт список участников, доступных ревьюверу
	SetAssignedMembers(ctx context.Context, sess *Session, username string, members []string) (*User, error)

	// ClearAssignedMembers снимает ограничение по участникам
	ClearAssignedMembers(ctx context.Context, sess *Session, username string) error
}
