package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/logger"
	"feedbackTracker/internal/metrics"
	"feedbackTracker/internal/storage"
)

// EnsureDefaultAdmin создаёт администратора по умолчанию, если пользователя
// с таким именем (без учёта регистра) ещё нет
func (s *Service) EnsureDefaultAdmin(outerCtx context.Context, username, password string) error {
	const op = "service.EnsureDefaultAdmin"

	if username == "" || password == "" {
		return domain.InvalidInput("default admin username and password are required")
	}

	created := false
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		exists, err := tx.UserRepo().ExistsByUsername(ctx, username)
		if err != nil || exists {
			return err
		}

		hash, err := domain.HashPassword(password)
		if err != nil {
			return err
		}
		created = true
		return tx.UserRepo().Create(ctx, &domain.User{
			Username:     username,
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
			Team:         domain.AllTeams,
		})
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	if created {
		metrics.UsersCreatedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
		log.Info().
			Str("layer", "service").
			Str("username", username).
			Msg("default admin account created")
	}

	return nil
}

// Login проверяет учётные данные: имя без учёта регистра, пароль - точное совпадение.
// Пароли, сохранённые старой версией в открытом виде, после успешного входа заменяются на bcrypt хеш.
func (s *Service) Login(outerCtx context.Context, username, password string) (*domain.Session, error) {
	const op = "service.Login"
	requestID := logger.GetRequestID(outerCtx)
	defer trackDuration("login")()

	if username == "" || password == "" {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	var user *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		u, err := tx.UserRepo().GetByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return domain.ErrInvalidCredentials
			}
			return err
		}

		ok, needsRehash := domain.CheckPassword(u.PasswordHash, password)
		if !ok {
			return domain.ErrInvalidCredentials
		}

		if needsRehash {
			hash, err := domain.HashPassword(password)
			if err != nil {
				return err
			}
			if err := tx.UserRepo().UpdatePassword(ctx, u.Username, hash); err != nil {
				return err
			}
			u.PasswordHash = hash
			metrics.PasswordRehashTotal.Inc()
		}

		user = u
		return nil
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("rejected").Inc()
		log.Warn().
			Str("request_id", requestID).
			Str("layer", "service").
			Str("username", username).
			Msg("login rejected")
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("user logged in")

	return domain.NewSession(user), nil
}

// CreateUser создаёт учётную запись. Имя, совпадающее с существующим без учёта регистра,
// отклоняется без изменения существующей записи.
func (s *Service) CreateUser(outerCtx context.Context, sess *domain.Session, input *domain.CreateUserInput) (*domain.User, error) {
	const op = "service.CreateUser"
	requestID := logger.GetRequestID(outerCtx)
	defer trackDuration("create_user")()

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domain.InvalidInput("username and password are required")
	}

	role := domain.RoleReviewer
	if input.Role != "" {
		r, ok := domain.ParseRole(input.Role)
		if !ok {
			return nil, domain.InvalidInput("role must be admin or reviewer")
		}
		role = r
	}

	user := &domain.User{
		Username: username,
		Role:     role,
		Team:     domain.AllTeams,
	}
	if role == domain.RoleReviewer {
		if !domain.IsKnownTeam(input.Team) {
			return nil, domain.ErrUnknownTeam
		}
		user.Team = input.Team
		user.AssignedMembers = domain.NewMemberSet(input.AssignedMembers)
	}

	hash, err := domain.HashPassword(input.Password)
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}
	user.PasswordHash = hash

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", username).
		Str("role", string(role)).
		Str("team", user.Team).
		Msg("creating user")

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		exists, err := tx.UserRepo().ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrUsernameExists
		}

		if !user.AssignedMembers.Empty() {
			roster, err := tx.TeamRepo().GetMembers(ctx, user.Team)
			if err != nil {
				return err
			}
			if err := checkRoster(user.AssignedMembers, roster); err != nil {
				return err
			}
		}

		return tx.UserRepo().Create(ctx, user)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(role)).Inc()
	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", username).
		Msg("successfully created user")

	return user, nil
}

// UpdateUser явно обновляет только переданные поля учётной записи
func (s *Service) UpdateUser(outerCtx context.Context, sess *domain.Session, input *domain.UpdateUserInput) (*domain.User, error) {
	const op = "service.UpdateUser"
	requestID := logger.GetRequestID(outerCtx)
	defer trackDuration("update_user")()

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if input.Username == "" {
		return nil, domain.InvalidInput("username is required")
	}

	var newHash string
	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.InvalidInput("password must not be empty")
		}
		hash, err := domain.HashPassword(*input.Password)
		if err != nil {
			return nil, s.formatError(outerCtx, op, err)
		}
		newHash = hash
	}

	var user *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		u, err := tx.UserRepo().GetByUsername(ctx, input.Username)
		if err != nil {
			return err
		}

		if newHash != "" {
			u.PasswordHash = newHash
		}

		if input.Team != nil || input.AssignedMembers != nil {
			if u.Role != domain.RoleReviewer {
				return domain.InvalidInput("team and assigned members apply to reviewers only")
			}
		}

		if input.Team != nil && *input.Team != u.Team {
			if !domain.IsKnownTeam(*input.Team) {
				return domain.ErrUnknownTeam
			}
			u.Team = *input.Team
			// Назначения старой команды к новой не относятся
			u.AssignedMembers = nil
		}

		if input.AssignedMembers != nil {
			members := domain.NewMemberSet(*input.AssignedMembers)
			roster, err := tx.TeamRepo().GetMembers(ctx, u.Team)
			if err != nil {
				return err
			}
			if err := checkRoster(members, roster); err != nil {
				return err
			}
			u.AssignedMembers = members
		}

		if err := tx.UserRepo().Update(ctx, u); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", user.Username).
		Bool("password_changed", newHash != "").
		Msg("successfully updated user")

	return user, nil
}

// ListUsers возвращает учётные записи; пустая роль - все
func (s *Service) ListUsers(outerCtx context.Context, sess *domain.Session, role domain.Role) ([]domain.User, error) {
	const op = "service.ListUsers"

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if role != "" {
		if _, ok := domain.ParseRole(string(role)); !ok {
			return nil, domain.InvalidInput("role must be admin or reviewer")
		}
	}

	var users []domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		u, err := tx.UserRepo().List(ctx, role)
		if err != nil {
			return err
		}
		users = u
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// SetAssignedMembers задаёт участников, о которых ревьювер может оставлять отзывы.
// Пустой список снимает ограничение.
func (s *Service) SetAssignedMembers(outerCtx context.Context, sess *domain.Session, username string, members []string) (*domain.User, error) {
	const op = "service.SetAssignedMembers"
	requestID := logger.GetRequestID(outerCtx)

	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	set := domain.NewMemberSet(members)

	var user *domain.User
	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		u, err := tx.UserRepo().GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u.Role != domain.RoleReviewer {
			return domain.InvalidInput("assigned members apply to reviewers only")
		}

		roster, err := tx.TeamRepo().GetMembers(ctx, u.Team)
		if err != nil {
			return err
		}
		if err := checkRoster(set, roster); err != nil {
			return err
		}

		if err := tx.UserRepo().SetAssignedMembers(ctx, u.Username, set); err != nil {
			return err
		}
		u.AssignedMembers = set
		user = u
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", user.Username).
		Strs("assigned_members", set).
		Msg("updated reviewer mapping")

	return user, nil
}

// ClearAssignedMembers очищает назначенных участников; неизвестный пользователь - не ошибка
func (s *Service) ClearAssignedMembers(outerCtx context.Context, sess *domain.Session, username string) error {
	const op = "service.ClearAssignedMembers"
	requestID := logger.GetRequestID(outerCtx)

	if err := requireAdmin(sess); err != nil {
		return err
	}

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		u, err := tx.UserRepo().GetByUsername(ctx, username)
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.UserRepo().ClearAssignedMembers(ctx, u.Username)
	})
	if err != nil {
		return s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("username", username).
		Msg("cleared reviewer mapping")

	return nil
}
