package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/storage"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository создаёт новый репозиторий пользователей
func NewUserRepository(db *gorm.DB) storage.UserRepository {
	return &userRepository{db: db}
}

// GetByUsername получает пользователя по имени без учёта регистра
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var dbUser User
	result := r.db.WithContext(ctx).First(&dbUser, "LOWER(username) = LOWER(?)", username)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	user := dbUser.toDomain()
	return &user, nil
}

// ExistsByUsername проверяет наличие пользователя без учёта регистра
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create вставляет пользователя; совпадение первичного ключа даёт ErrAlreadyExists
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(newUserModel(user)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return storage.ErrAlreadyExists
	}
	return err
}

// Update явно перезаписывает все поля пользователя
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	dbUser := newUserModel(user)
	result := r.db.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", user.Username).
		Updates(map[string]interface{}{
			"password":         dbUser.Password,
			"role":             dbUser.Role,
			"team":             dbUser.Team,
			"assigned_members": *dbUser.AssignedMembers,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// UpdatePassword заменяет хеш пароля
func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Update("password", passwordHash).Error
}

// List возвращает пользователей, пустая роль - всех
func (r *userRepository) List(ctx context.Context, role domain.Role) ([]domain.User, error) {
	query := r.db.WithContext(ctx).Model(&User{})
	if role != "" {
		query = query.Where("role = ?", string(role))
	}

	var dbUsers []User
	if err := query.Find(&dbUsers).Error; err != nil {
		return nil, err
	}

	users := make([]domain.User, len(dbUsers))
	for i := range dbUsers {
		users[i] = dbUsers[i].toDomain()
	}

	return users, nil
}

// SetAssignedMembers сохраняет назначенных участников одной строкой
func (r *userRepository) SetAssignedMembers(ctx context.Context, username string, members domain.MemberSet) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Update("assigned_members", members.String()).Error
}

// ClearAssignedMembers сбрасывает назначенных участников в пустую строку
func (r *userRepository) ClearAssignedMembers(ctx context.Context, username string) error {
	return r.SetAssignedMembers(ctx, username, nil)
}
