package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/mocks"
	"feedbackTracker/internal/service"
	"feedbackTracker/internal/storage"
)

var reviewerSession = &domain.Session{
	Username:        "alice",
	Role:            domain.RoleReviewer,
	Team:            "Hawk Force",
	AssignedMembers: domain.MemberSet{"Utsav Chauhan"},
}

var reviewerUser = &domain.User{
	Username:        "alice",
	Role:            domain.RoleReviewer,
	Team:            "Hawk Force",
	AssignedMembers: domain.MemberSet{"Utsav Chauhan"},
}

func TestAddFeedback_Success(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockTeamRepo := mocks.NewTeamRepository(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	svc := service.New(mockTxMgr, service.WithClock(func() time.Time { return now }))

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("TeamRepo").Return(mockTeamRepo)
			mockTx.On("FeedbackRepo").Return(mockFeedbackRepo)

			mockUserRepo.On("GetByUsername", mock.Anything, "alice").Return(reviewerUser, nil)
			mockTeamRepo.On("GetMembers", mock.Anything, "Hawk Force").
				Return([]string{"Utsav Chauhan", "Faisal Iqbal"}, nil)

			mockFeedbackRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.FeedbackEntry) bool {
				return e.Reviewer == "alice" &&
					e.TeamMember == "Utsav Chauhan" &&
					e.Team == "Hawk Force" &&
					e.Status == domain.StatusInProgress &&
					e.Date.Equal(now)
			})).Run(func(args mock.Arguments) {
				args.Get(1).(*domain.FeedbackEntry).ID = 7
			}).Return(nil)

			_ = fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	entry, err := svc.AddFeedback(context.Background(), reviewerSession, &domain.AddFeedbackInput{
		TeamMember: "Utsav Chauhan",
		Text:       "Good sprint",
		Status:     "In Progress",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
	assert.Equal(t, "Hawk Force", entry.Team)
}

func TestAddFeedback_NotAssignedMember(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "alice").Return(reviewerUser, nil)

			_ = fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	entry, err := svc.AddFeedback(context.Background(), reviewerSession, &domain.AddFeedbackInput{
		TeamMember: "Faisal Iqbal",
		Text:       "Good sprint",
	})

	// Assert
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockFeedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddFeedback_UsesCurrentUserRecord(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	svc := service.New(mockTxMgr)

	// В cookie ограничений нет, но администратор уже перевёл пользователя в другую команду
	staleSession := &domain.Session{Username: "alice", Role: domain.RoleReviewer, Team: "Hawk Force"}
	var txErr error

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "alice").
				Return(&domain.User{Username: "alice", Role: domain.RoleReviewer, Team: "Speed Demons"}, nil)

			txErr = fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	_, err := svc.AddFeedback(context.Background(), staleSession, &domain.AddFeedbackInput{
		TeamMember: "Faisal Iqbal",
		Text:       "Good sprint",
		Team:       "Hawk Force",
	})

	// Assert
	assert.ErrorIs(t, txErr, domain.ErrForbidden)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockFeedbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddFeedback_DeletedUserUnauthorized(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)
	var txErr error

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, storage.ErrNotFound)

			txErr = fn(context.Background(), mockTx)
		}).Return(domain.ErrUnauthorized)

	// Act
	_, err := svc.AddFeedback(context.Background(), reviewerSession, &domain.AddFeedbackInput{
		TeamMember: "Utsav Chauhan",
		Text:       "Good sprint",
	})

	// Assert
	assert.ErrorIs(t, txErr, domain.ErrUnauthorized)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAddFeedback_NoSession(t *testing.T) {
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	_, err := svc.AddFeedback(context.Background(), nil, &domain.AddFeedbackInput{TeamMember: "x", Text: "y"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateFeedback_NotFound(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("FeedbackRepo").Return(mockFeedbackRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "alice").Return(reviewerUser, nil)
			mockFeedbackRepo.On("GetByID", mock.Anything, int64(42)).
				Return(nil, storage.ErrNotFound)

			_ = fn(context.Background(), mockTx)
		}).Return(storage.ErrNotFound)

	// Act
	entry, err := svc.UpdateFeedback(context.Background(), reviewerSession, &domain.UpdateFeedbackInput{
		ID:     42,
		Status: "Completed",
		Text:   "done",
	})

	// Assert
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestUpdateFeedback_OtherReviewer(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockTx.On("FeedbackRepo").Return(mockFeedbackRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "alice").Return(reviewerUser, nil)
			mockFeedbackRepo.On("GetByID", mock.Anything, int64(3)).
				Return(&domain.FeedbackEntry{ID: 3, Reviewer: "bob", Team: "Hawk Force"}, nil)

			// Update не должен вызываться
			_ = fn(context.Background(), mockTx)
		}).Return(domain.ErrForbidden)

	// Act
	_, err := svc.UpdateFeedback(context.Background(), reviewerSession, &domain.UpdateFeedbackInput{
		ID:     3,
		Status: "Completed",
		Text:   "done",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrForbidden)
	mockFeedbackRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListFeedback_ReviewerSeesOnlyOwn(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockFeedbackRepo := mocks.NewFeedbackRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("FeedbackRepo").Return(mockFeedbackRepo)
			// Фильтр по ревьюверу подменяется на пользователя сессии
			mockFeedbackRepo.On("List", mock.Anything, domain.FeedbackFilter{Team: "Hawk Force", Reviewer: "alice"}).
				Return(nil, nil)

			_ = fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	entries, err := svc.ListFeedback(context.Background(), reviewerSession, domain.FeedbackFilter{
		Team:     "Hawk Force",
		Reviewer: "bob",
	})

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListFeedback_StorageFailure(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.Anything).
		Return(errors.New("disk I/O error"))

	// Act
	_, err := svc.ListFeedback(context.Background(), reviewerSession, domain.FeedbackFilter{})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestDeleteFeedback_ReviewerForbidden(t *testing.T) {
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	err := svc.DeleteFeedback(context.Background(), reviewerSession, 1)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}
