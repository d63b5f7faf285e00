package handlers

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"feedbackTracker/internal/api/middleware"
	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/tracing"
)

const (
	AuthPathRoute = "/auth"
	LoginRoute    = "/login"
	LogoutRoute   = "/logout"
	MeRoute       = "/me"

	TeamPathRoute   = "/teams"
	ListTeamsRoute  = "/list"
	TeamMemberRoute = "/members"

	FeedbackPathRoute   = "/feedback"
	AddFeedbackRoute    = "/add"
	ListFeedbackRoute   = "/list"
	GroupFeedbackRoute  = "/groups"
	UpdateFeedbackRoute = "/update"
	DeleteFeedbackRoute = "/delete"
	ExportFeedbackRoute = "/export"

	UserPathRoute     = "/users"
	AddUserRoute      = "/add"
	UpdateUserRoute   = "/update"
	ListUsersRoute    = "/list"
	SetMembersRoute   = "/setMembers"
	ClearMembersRoute = "/clearMembers"

	HealthRoute  = "/health"
	MetricsRoute = "/metrics"
)

// HealthChecker проверяет доступность хранилища
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	service        domain.FeedbackService
	store          sessions.Store
	health         HealthChecker
	allowedOrigins []string
}

func NewHandler(service domain.FeedbackService, store sessions.Store, health HealthChecker, allowedOrigins []string) *Handler {
	return &Handler{
		service:        service,
		store:          store,
		health:         health,
		allowedOrigins: allowedOrigins,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(
		otelgin.Middleware(tracing.ServiceName),
		middleware.LoggerMiddleware(),
		middleware.RecoveryMiddleware(),
		middleware.MetricsMiddleware(),
	)

	if len(h.allowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     h.allowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Disposition", middleware.RequestIDHeader},
			AllowCredentials: true,
		}))
	}

	r.Use(middleware.SessionMiddleware(h.store))

	r.GET(HealthRoute, h.Health)
	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	authGroup := r.Group(AuthPathRoute)
	{
		authGroup.POST(LoginRoute, h.Login)
		authGroup.POST(LogoutRoute, middleware.RequireUser(), h.Logout)
		authGroup.GET(MeRoute, middleware.RequireUser(), h.Me)
	}

	teamGroup := r.Group(TeamPathRoute, middleware.RequireUser())
	{
		teamGroup.GET(ListTeamsRoute, h.ListTeams)
		teamGroup.GET(TeamMemberRoute, h.GetTeamMembers)
	}

	feedbackGroup := r.Group(FeedbackPathRoute, middleware.RequireUser())
	{
		feedbackGroup.POST(AddFeedbackRoute, h.AddFeedback)
		feedbackGroup.GET(ListFeedbackRoute, h.ListFeedback)
		feedbackGroup.GET(GroupFeedbackRoute, h.GroupFeedback)
		feedbackGroup.POST(UpdateFeedbackRoute, h.UpdateFeedback)
		feedbackGroup.POST(DeleteFeedbackRoute, middleware.RequireAdmin(), h.DeleteFeedback)
		feedbackGroup.GET(ExportFeedbackRoute, h.ExportFeedback)
	}

	userGroup := r.Group(UserPathRoute, middleware.RequireAdmin())
	{
		userGroup.POST(AddUserRoute, h.AddUser)
		userGroup.POST(UpdateUserRoute, h.UpdateUser)
		userGroup.GET(ListUsersRoute, h.ListUsers)
		userGroup.POST(SetMembersRoute, h.SetMembers)
		userGroup.POST(ClearMembersRoute, h.ClearMembers)
	}

	return r
}
