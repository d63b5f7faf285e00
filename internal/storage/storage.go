package storage

import (
	"context"

	"feedbackTracker/internal/domain"
)

// TxManager управляет транзакциями базы данных
//
//go:generate mockery --name=TxManager --output=../mocks --outpkg=mocks --filename=tx_manager_mock.go
type TxManager interface {
	// Do выполняет функцию fn внутри транзакции
	// Если fn возвращает ошибку, транзакция откатывается
	// Иначе транзакция коммитится
	Do(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx представляет транзакцию с доступом к репозиториям
//
//go:generate mockery --name=Tx --output=../mocks --outpkg=mocks --filename=tx_mock.go
type Tx interface {
	FeedbackRepo() FeedbackRepository
	UserRepo() UserRepository
	TeamRepo() TeamRepository
}

// FeedbackRepository определяет операции с записями обратной связи
//
//go:generate mockery --name=FeedbackRepository --output=../mocks --outpkg=mocks --filename=feedback_repository_mock.go
type FeedbackRepository interface {
	// Create вставляет запись, заполняя ID
	Create(ctx context.Context, entry *domain.FeedbackEntry) error

	// GetByID возвращает запись по ID
	GetByID(ctx context.Context, id int64) (*domain.FeedbackEntry, error)

	// List возвращает записи в порядке вставки
	List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.FeedbackEntry, error)

	// Update перезаписывает статус и текст; отсутствующий id не является ошибкой
	Update(ctx context.Context, id int64, status domain.Status, text string) error

	// Delete удаляет запись; отсутствующий id не является ошибкой
	Delete(ctx context.Context, id int64) error
}

// UserRepository определяет операции с учётными записями
//
//go:generate mockery --name=UserRepository --output=../mocks --outpkg=mocks --filename=user_repository_mock.go
type UserRepository interface {
	// GetByUsername ищет пользователя без учёта регистра
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// ExistsByUsername проверяет наличие пользователя без учёта регистра
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create вставляет нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// Update перезаписывает все поля пользователя с точно таким же username
	Update(ctx context.Context, user *domain.User) error

	// UpdatePassword заменяет хеш пароля
	UpdatePassword(ctx context.Context, username, passwordHash string) error

	// List возвращает всех пользователей; пустая роль не фильтрует
	List(ctx context.Context, role domain.Role) ([]domain.User, error)

	// SetAssignedMembers сохраняет список назначенных участников
	SetAssignedMembers(ctx context.Context, username string, members domain.MemberSet) error

	// ClearAssignedMembers очищает список назначенных участников; отсутствующий username не является ошибкой
	ClearAssignedMembers(ctx context.Context, username string) error
}

// TeamRepository определяет операции с составом команд
//
//go:generate mockery --name=TeamRepository --output=../mocks --outpkg=mocks --filename=team_repository_mock.go
type TeamRepository interface {
	// GetMembers возвращает уникальные имена участников команды
	GetMembers(ctx context.Context, team string) ([]string, error)

	// SeedMembers добавляет отсутствующие пары (команда, участник)
	SeedMembers(ctx context.Context, rosters []domain.TeamRoster) error
}
