package domain

import (
	"strings"
	"time"
)

// Status - статус записи обратной связи
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Statuses - все статусы в порядке отображения (используется для выбора и индексов)
var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}

// ParseStatus возвращает статус по строке; пустая строка означает Pending
func ParseStatus(s string) (Status, bool) {
	if s == "" {
		return StatusPending, true
	}
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StatusIndex возвращает позицию статуса в Statuses или -1
func StatusIndex(s Status) int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Role - роль пользователя
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleReviewer Role = "reviewer"
)

// ParseRole проверяет, что роль одна из известных
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleReviewer:
		return Role(s), true
	}
	return "", false
}

// MemberSet - упорядоченное множество имён участников команды.
// В БД хранится одной строкой через запятую.
type MemberSet []string

// ParseMemberSet разбирает строку вида "a, b,,c" в множество, сохраняя порядок
func ParseMemberSet(s string) MemberSet {
	return NewMemberSet(strings.Split(s, ","))
}

// NewMemberSet обрезает пробелы, отбрасывает пустые значения и дубликаты
func NewMemberSet(names []string) MemberSet {
	set := make(MemberSet, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	return set
}

// String сериализует множество для хранения
func (m MemberSet) String() string {
	return strings.Join(m, ",")
}

// Contains проверяет наличие имени в множестве
func (m MemberSet) Contains(name string) bool {
	for _, n := range m {
		if n == name {
			return true
		}
	}
	return false
}

// Empty - пустое множество означает отсутствие ограничения
func (m MemberSet) Empty() bool {
	return len(m) == 0
}

// FeedbackEntry - запись обратной связи
type FeedbackEntry struct {
	ID         int64
	Reviewer   string
	TeamMember string
	Text       string
	Team       string
	Status     Status
	Date       time.Time
}

// User - domain модель пользователя
type User struct {
	Username        string
	PasswordHash    string
	Role            Role
	Team            string
	AssignedMembers MemberSet
}

// Session - контекст аутентифицированного пользователя на время одной сессии
type Session struct {
	Username        string
	Role            Role
	Team            string
	AssignedMembers MemberSet
}

// NewSession строит сессию из записи пользователя
func NewSession(u *User) *Session {
	return &Session{
		Username:        u.Username,
		Role:            u.Role,
		Team:            u.Team,
		AssignedMembers: u.AssignedMembers,
	}
}

// IsAdmin проверяет роль администратора
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// CanReview сообщает, может ли пользователь сессии оставлять отзыв об участнике своей команды.
// Пустой список назначенных участников означает отсутствие ограничения.
func (s *Session) CanReview(member string) bool {
	if s.IsAdmin() || s.AssignedMembers.Empty() {
		return true
	}
	return s.AssignedMembers.Contains(member)
}

// FeedbackFilter - фильтр выборки записей; пустые поля не фильтруют
type FeedbackFilter struct {
	Team       string
	Reviewer   string
	TeamMember string
}

// FeedbackGroup - группа записей по паре участник/ревьювер
type FeedbackGroup struct {
	TeamMember string
	Reviewer   string
	Count      int
}

// GroupFeedback группирует записи по (участник, ревьювер) в порядке первого появления
func GroupFeedback(entries []FeedbackEntry) []FeedbackGroup {
	type key struct{ member, reviewer string }
	index := make(map[key]int)
	groups := make([]FeedbackGroup, 0)
	for _, e := range entries {
		k := key{e.TeamMember, e.Reviewer}
		if i, ok := index[k]; ok {
			groups[i].Count++
			continue
		}
		index[k] = len(groups)
		groups = append(groups, FeedbackGroup{TeamMember: e.TeamMember, Reviewer: e.Reviewer, Count: 1})
	}
	return groups
}

// ExportFormat - формат выгрузки
type ExportFormat string

const (
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatCSV  ExportFormat = "csv"
)

// Export - готовый к отдаче файл выгрузки
type Export struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Input DTOs для методов сервиса

// AddFeedbackInput - входные данные для создания записи
type AddFeedbackInput struct {
	TeamMember string
	Text       string
	Team       string
	Status     string
}

// UpdateFeedbackInput - входные данные для изменения записи
type UpdateFeedbackInput struct {
	ID     int64
	Status string
	Text   string
}

// CreateUserInput - входные данные для создания учётной записи
type CreateUserInput struct {
	Username        string
	Password        string
	Role            string
	Team            string
	AssignedMembers []string
}

// UpdateUserInput - частичное обновление учётной записи; nil поля не меняются
type UpdateUserInput struct {
	Username        string
	Password        *string
	Team            *string
	AssignedMembers *[]string
}
