package gorm

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/storage"
)

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository создаёт новый репозиторий записей обратной связи
func NewFeedbackRepository(db *gorm.DB) storage.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create вставляет запись; дата берётся из entry или текущего времени
func (r *feedbackRepository) Create(ctx context.Context, entry *domain.FeedbackEntry) error {
	if entry.Status == "" {
		entry.Status = domain.StatusPending
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	entry.Date = entry.Date.Truncate(time.Second)

	dbEntry := &FeedbackEntry{
		Reviewer:   entry.Reviewer,
		TeamMember: entry.TeamMember,
		Text:       entry.Text,
		Team:       entry.Team,
		Status:     string(entry.Status),
		Date:       entry.Date.In(time.Local).Format(dateLayout),
	}

	if err := r.db.WithContext(ctx).Create(dbEntry).Error; err != nil {
		return err
	}

	entry.ID = dbEntry.ID
	return nil
}

// GetByID получает запись по ID
func (r *feedbackRepository) GetByID(ctx context.Context, id int64) (*domain.FeedbackEntry, error) {
	var dbEntry FeedbackEntry
	result := r.db.WithContext(ctx).First(&dbEntry, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, result.Error
	}

	entry := dbEntry.toDomain()
	return &entry, nil
}

// List возвращает записи по фильтру в порядке вставки
func (r *feedbackRepository) List(ctx context.Context, filter domain.FeedbackFilter) ([]domain.FeedbackEntry, error) {
	query := r.db.WithContext(ctx).Model(&FeedbackEntry{})
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.Reviewer != "" {
		query = query.Where("reviewer = ?", filter.Reviewer)
	}
	if filter.TeamMember != "" {
		query = query.Where("team_member = ?", filter.TeamMember)
	}

	var dbEntries []FeedbackEntry
	if err := query.Order("id").Find(&dbEntries).Error; err != nil {
		return nil, err
	}

	entries := make([]domain.FeedbackEntry, len(dbEntries))
	for i := range dbEntries {
		entries[i] = dbEntries[i].toDomain()
	}

	return entries, nil
}

// Update перезаписывает статус и текст; дата создания не меняется
func (r *feedbackRepository) Update(ctx context.Context, id int64, status domain.Status, text string) error {
	return r.db.WithContext(ctx).
		Model(&FeedbackEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   string(status),
			"feedback": text,
		}).Error
}

// Delete физически удаляет запись
func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&FeedbackEntry{}).Error
}
