package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/logger"
	"feedbackTracker/internal/storage"
)

// SeedTeamMembers идемпотентно заполняет состав команд; безопасно вызывать на каждом старте
func (s *Service) SeedTeamMembers(outerCtx context.Context) error {
	const op = "service.SeedTeamMembers"

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.TeamRepo().SeedMembers(ctx, domain.Teams)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("layer", "service").
		Int("teams_count", len(domain.Teams)).
		Msg("team rosters seeded")

	return nil
}

// ListTeams возвращает команды, доступные пользователю
func (s *Service) ListTeams(outerCtx context.Context, sess *domain.Session) ([]string, error) {
	const op = "service.ListTeams"

	if err := requireSession(sess); err != nil {
		return nil, err
	}

	var current *domain.Session
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		c, err := currentSession(ctx, tx, sess)
		if err != nil {
			return err
		}
		current = c
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	if current.IsAdmin() {
		return domain.TeamNames(), nil
	}
	return []string{current.Team}, nil
}

// GetTeamMembers возвращает участников команды. Ревьюверу доступна только своя команда,
// а при заданном списке назначенных участников - только они.
func (s *Service) GetTeamMembers(outerCtx context.Context, sess *domain.Session, team string) ([]string, error) {
	const op = "service.GetTeamMembers"
	requestID := logger.GetRequestID(outerCtx)

	if err := requireSession(sess); err != nil {
		return nil, err
	}

	var visible []string
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		current, err := currentSession(ctx, tx, sess)
		if err != nil {
			return err
		}

		if team == "" && !current.IsAdmin() {
			team = current.Team
		}
		if !domain.IsKnownTeam(team) {
			return domain.ErrUnknownTeam
		}
		if !current.IsAdmin() && team != current.Team {
			return domain.ErrForbidden
		}

		members, err := tx.TeamRepo().GetMembers(ctx, team)
		if err != nil {
			return err
		}

		visible = make([]string, 0, len(members))
		for _, m := range members {
			if current.CanReview(m) {
				visible = append(visible, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("team", team).
		Int("members_count", len(visible)).
		Msg("fetched team members")

	return visible, nil
}
