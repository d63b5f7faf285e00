package gorm

import (
	"time"

	"feedbackTracker/internal/domain"
)

// dateLayout - формат колонки feedback.date: локальное время с точностью до секунды
const dateLayout = "2006-01-02 15:04:05"

// FeedbackEntry - модель БД для записи обратной связи
type FeedbackEntry struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Reviewer   string `gorm:"column:reviewer;not null"`
	TeamMember string `gorm:"column:team_member;not null"`
	Text       string `gorm:"column:feedback;not null"`
	Team       string `gorm:"column:team;not null"`
	Status     string `gorm:"column:status;not null"`
	Date       string `gorm:"column:date;not null"`
}

func (FeedbackEntry) TableName() string {
	return "feedback"
}

func (e *FeedbackEntry) toDomain() domain.FeedbackEntry {
	date, _ := time.ParseInLocation(dateLayout, e.Date, time.Local)
	return domain.FeedbackEntry{
		ID:         e.ID,
		Reviewer:   e.Reviewer,
		TeamMember: e.TeamMember,
		Text:       e.Text,
		Team:       e.Team,
		Status:     domain.Status(e.Status),
		Date:       date,
	}
}

// User - модель БД для пользователя; assigned_members может быть NULL
type User struct {
	Username        string  `gorm:"column:username;primaryKey"`
	Password        string  `gorm:"column:password;not null"`
	Role            string  `gorm:"column:role;not null"`
	Team            string  `gorm:"column:team;not null"`
	AssignedMembers *string `gorm:"column:assigned_members"`
}

func (User) TableName() string {
	return "users"
}

func newUserModel(u *domain.User) *User {
	members := u.AssignedMembers.String()
	return &User{
		Username:        u.Username,
		Password:        u.PasswordHash,
		Role:            string(u.Role),
		Team:            u.Team,
		AssignedMembers: &members,
	}
}

func (u *User) toDomain() domain.User {
	var members domain.MemberSet
	if u.AssignedMembers != nil {
		members = domain.ParseMemberSet(*u.AssignedMembers)
	}
	return domain.User{
		Username:        u.Username,
		PasswordHash:    u.Password,
		Role:            domain.Role(u.Role),
		Team:            u.Team,
		AssignedMembers: members,
	}
}

// TeamMember - модель БД для пары (команда, участник)
type TeamMember struct {
	Team       string `gorm:"column:team;not null"`
	MemberName string `gorm:"column:member_name;not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
