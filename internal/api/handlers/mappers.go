package handlers

import (
	"feedbackTracker/internal/api"
	"feedbackTracker/internal/domain"
)

const dateLayout = "2006-01-02 15:04:05"

// mapFeedbackToAPI конвертирует domain.FeedbackEntry в API response
func mapFeedbackToAPI(e *domain.FeedbackEntry) api.FeedbackEntry {
	return api.FeedbackEntry{
		ID:         e.ID,
		Reviewer:   e.Reviewer,
		TeamMember: e.TeamMember,
		Feedback:   e.Text,
		Team:       e.Team,
		Status:     string(e.Status),
		Date:       e.Date.Format(dateLayout),
	}
}

func mapFeedbackListToAPI(entries []domain.FeedbackEntry) []api.FeedbackEntry {
	out := make([]api.FeedbackEntry, len(entries))
	for i := range entries {
		out[i] = mapFeedbackToAPI(&entries[i])
	}
	return out
}

func mapGroupsToAPI(groups []domain.FeedbackGroup) []api.FeedbackGroup {
	out := make([]api.FeedbackGroup, len(groups))
	for i, g := range groups {
		out[i] = api.FeedbackGroup{
			TeamMember: g.TeamMember,
			Reviewer:   g.Reviewer,
			Count:      g.Count,
		}
	}
	return out
}

// mapUserToAPI конвертирует domain.User в API response без пароля
func mapUserToAPI(u *domain.User) api.User {
	members := []string(u.AssignedMembers)
	if members == nil {
		members = []string{}
	}
	return api.User{
		Username:        u.Username,
		Role:            string(u.Role),
		Team:            u.Team,
		AssignedMembers: members,
	}
}

func mapSessionToAPI(s *domain.Session) api.User {
	return mapUserToAPI(&domain.User{
		Username:        s.Username,
		Role:            s.Role,
		Team:            s.Team,
		AssignedMembers: s.AssignedMembers,
	})
}
