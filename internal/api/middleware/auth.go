package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"

	"feedbackTracker/internal/api"
	"feedbackTracker/internal/domain"
)

const (
	// SessionName - имя cookie сессии
	SessionName = "feedback_session"

	// SessionKey - ключ *domain.Session в gin.Context
	SessionKey = "session"

	valueUsername        = "username"
	valueRole            = "role"
	valueTeam            = "team"
	valueAssignedMembers = "assigned_members"
)

// SessionMiddleware восстанавливает сессию пользователя из cookie.
// Анонимный запрос проходит дальше без сессии, доступ проверяют RequireUser/RequireAdmin.
func SessionMiddleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := store.Get(c.Request, SessionName)
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", RequestID(c)).
				Str("layer", "middleware").
				Msg("failed to load session")
			c.Next()
			return
		}

		if sess := decodeSession(s); sess != nil {
			c.Set(SessionKey, sess)
		}

		c.Next()
	}
}

// StartSession сохраняет сессию пользователя после успешного входа.
// Сессия, пришедшая в запросе, удаляется: после входа всегда выдаётся новый идентификатор.
func StartSession(c *gin.Context, store sessions.Store, sess *domain.Session) error {
	// Ошибка декодирования старой cookie не мешает выдать новую
	prev, _ := store.Get(c.Request, SessionName)
	if prev == nil {
		return http.ErrNoCookie
	}

	opts := sessions.Options{Path: "/"}
	if prev.Options != nil {
		opts = *prev.Options
	}

	if !prev.IsNew {
		prev.Values = make(map[interface{}]interface{})
		prev.Options = &sessions.Options{Path: opts.Path, Domain: opts.Domain, MaxAge: -1}
		if err := prev.Save(c.Request, c.Writer); err != nil {
			return err
		}
	}

	s := sessions.NewSession(store, SessionName)
	s.Options = &opts
	s.IsNew = true

	s.Values[valueUsername] = sess.Username
	s.Values[valueRole] = string(sess.Role)
	s.Values[valueTeam] = sess.Team
	s.Values[valueAssignedMembers] = sess.AssignedMembers.String()

	return s.Save(c.Request, c.Writer)
}

// EndSession удаляет сессию: Anonymous после выхода
func EndSession(c *gin.Context, store sessions.Store) error {
	s, _ := store.Get(c.Request, SessionName)
	if s == nil {
		return nil
	}

	s.Values = make(map[interface{}]interface{})
	if s.Options == nil {
		s.Options = &sessions.Options{Path: "/"}
	}
	s.Options.MaxAge = -1
	return s.Save(c.Request, c.Writer)
}

func decodeSession(s *sessions.Session) *domain.Session {
	username, _ := s.Values[valueUsername].(string)
	if username == "" {
		return nil
	}
	role, _ := s.Values[valueRole].(string)
	team, _ := s.Values[valueTeam].(string)
	members, _ := s.Values[valueAssignedMembers].(string)

	return &domain.Session{
		Username:        username,
		Role:            domain.Role(role),
		Team:            team,
		AssignedMembers: domain.ParseMemberSet(members),
	}
}

// CurrentSession возвращает сессию запроса или nil
func CurrentSession(c *gin.Context) *domain.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}

// RequireUser пропускает только аутентифицированных пользователей
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "login required"))
			return
		}
		c.Next()
	}
}

// RequireAdmin пропускает только администраторов
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				api.NewErrorResponse(api.ErrCodeUnauthorized, "login required"))
			return
		}
		if !sess.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				api.NewErrorResponse(api.ErrCodeForbidden, "admin role required"))
			return
		}
		c.Next()
	}
}
