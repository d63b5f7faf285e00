package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/storage"
)

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository создаёт новый репозиторий состава команд
func NewTeamRepository(db *gorm.DB) storage.TeamRepository {
	return &teamRepository{db: db}
}

// GetMembers возвращает уникальных участников команды в порядке хранения
func (r *teamRepository) GetMembers(ctx context.Context, team string) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&TeamMember{}).
		Where("team = ?", team).
		Distinct().
		Pluck("member_name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// SeedMembers вставляет пары (команда, участник), пропуская уже существующие
func (r *teamRepository) SeedMembers(ctx context.Context, rosters []domain.TeamRoster) error {
	var rows []TeamMember
	for _, roster := range rosters {
		for _, member := range roster.Members {
			rows = append(rows, TeamMember{Team: roster.Name, MemberName: member})
		}
	}
	if len(rows) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
