package gorm_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"feedbackTracker/internal/config"
	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/storage"
	storageGorm "feedbackTracker/internal/storage/gorm"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ProductionType: "test",
		Database: config.Database{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "feedback.db"),
		},
	}
}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := storageGorm.ConnectDB(testConfig(t))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestConnectDB_MigrationsAreRepeatable(t *testing.T) {
	cfg := testConfig(t)

	db, err := storageGorm.ConnectDB(cfg)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	require.NoError(t, sqlDB.Close())

	// Повторный старт на той же базе не должен падать
	db, err = storageGorm.ConnectDB(cfg)
	require.NoError(t, err)
	sqlDB, _ = db.DB()
	require.NoError(t, sqlDB.Close())
}

func TestConnectDB_UnsupportedDriver(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "mysql"

	_, err := storageGorm.ConnectDB(cfg)
	assert.Error(t, err)
}

func TestFeedbackRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewFeedbackRepository(setupDB(t))

	created := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.Local)
	entry := &domain.FeedbackEntry{
		Reviewer:   "bob",
		TeamMember: "Nisha",
		Text:       "Great job",
		Team:       "Guarding Tigers",
		Date:       created,
	}

	require.NoError(t, repo.Create(ctx, entry))
	assert.Equal(t, int64(1), entry.ID)
	assert.Equal(t, domain.StatusPending, entry.Status)

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Reviewer)
	assert.Equal(t, "Nisha", got.TeamMember)
	assert.Equal(t, "Great job", got.Text)
	assert.Equal(t, "Guarding Tigers", got.Team)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, got.Date.Equal(created.Truncate(time.Second)), "date %s", got.Date)
}

func TestFeedbackRepository_GetByID_NotFound(t *testing.T) {
	repo := storageGorm.NewFeedbackRepository(setupDB(t))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFeedbackRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewFeedbackRepository(setupDB(t))

	rows := []*domain.FeedbackEntry{
		{Reviewer: "bob", TeamMember: "Nisha", Text: "one", Team: "Guarding Tigers"},
		{Reviewer: "alice", TeamMember: "Lavnya", Text: "two", Team: "Speed Demons"},
		{Reviewer: "bob", TeamMember: "Varun", Text: "three", Team: "Guarding Tigers", Status: domain.StatusCompleted},
	}
	for _, r := range rows {
		require.NoError(t, repo.Create(ctx, r))
	}

	all, err := repo.List(ctx, domain.FeedbackFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{all[0].Text, all[1].Text, all[2].Text})

	byTeam, err := repo.List(ctx, domain.FeedbackFilter{Team: "Guarding Tigers"})
	require.NoError(t, err)
	assert.Len(t, byTeam, 2)

	byReviewerAndMember, err := repo.List(ctx, domain.FeedbackFilter{Reviewer: "bob", TeamMember: "Varun"})
	require.NoError(t, err)
	require.Len(t, byReviewerAndMember, 1)
	assert.Equal(t, domain.StatusCompleted, byReviewerAndMember[0].Status)

	none, err := repo.List(ctx, domain.FeedbackFilter{Team: "Hawk Force"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFeedbackRepository_UpdateKeepsDate(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewFeedbackRepository(setupDB(t))

	entry := &domain.FeedbackEntry{Reviewer: "bob", TeamMember: "Nisha", Text: "draft", Team: "Guarding Tigers"}
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Update(ctx, entry.ID, domain.StatusInProgress, "final"))
	// Повторное обновление теми же значениями - то же состояние
	require.NoError(t, repo.Update(ctx, entry.ID, domain.StatusInProgress, "final"))

	got, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, "final", got.Text)
	assert.True(t, got.Date.Equal(entry.Date))
}

func TestFeedbackRepository_MissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewFeedbackRepository(setupDB(t))

	entry := &domain.FeedbackEntry{Reviewer: "bob", TeamMember: "Nisha", Text: "keep", Team: "Guarding Tigers"}
	require.NoError(t, repo.Create(ctx, entry))

	assert.NoError(t, repo.Update(ctx, 999, domain.StatusCompleted, "x"))
	assert.NoError(t, repo.Delete(ctx, 999))

	all, err := repo.List(ctx, domain.FeedbackFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "keep", all[0].Text)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserRepository_CaseInsensitiveLookup(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewUserRepository(setupDB(t))

	require.NoError(t, repo.Create(ctx, &domain.User{
		Username:     "Bob",
		PasswordHash: "hash",
		Role:         domain.RoleReviewer,
		Team:         "Guarding Tigers",
	}))

	got, err := repo.GetByUsername(ctx, "bOB")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Username)
	assert.True(t, got.AssignedMembers.Empty())

	exists, err := repo.ExistsByUsername(ctx, "BOB")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewUserRepository(setupDB(t))

	user := &domain.User{Username: "bob", PasswordHash: "first", Role: domain.RoleReviewer, Team: "Hawk Force"}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "second", Role: domain.RoleAdmin, Team: domain.AllTeams})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	got, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "first", got.PasswordHash)
	assert.Equal(t, domain.RoleReviewer, got.Role)
}

func TestUserRepository_UpdateAndMembers(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewUserRepository(setupDB(t))

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h", Role: domain.RoleReviewer, Team: "Hawk Force"}))

	require.NoError(t, repo.Update(ctx, &domain.User{
		Username:        "bob",
		PasswordHash:    "h2",
		Role:            domain.RoleReviewer,
		Team:            "Speed Demons",
		AssignedMembers: domain.MemberSet{"Lavnya"},
	}))

	got, err := repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h2", got.PasswordHash)
	assert.Equal(t, "Speed Demons", got.Team)
	assert.Equal(t, domain.MemberSet{"Lavnya"}, got.AssignedMembers)

	require.NoError(t, repo.SetAssignedMembers(ctx, "bob", domain.MemberSet{"Lavnya", "Anil kumar"}))
	got, err = repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, domain.MemberSet{"Lavnya", "Anil kumar"}, got.AssignedMembers)

	require.NoError(t, repo.ClearAssignedMembers(ctx, "bob"))
	got, err = repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, got.AssignedMembers.Empty())

	require.NoError(t, repo.UpdatePassword(ctx, "bob", "h3"))
	got, err = repo.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "h3", got.PasswordHash)

	err = repo.Update(ctx, &domain.User{Username: "ghost", Role: domain.RoleReviewer})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserRepository_ListByRole(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewUserRepository(setupDB(t))

	require.NoError(t, repo.Create(ctx, &domain.User{Username: "admin", PasswordHash: "h", Role: domain.RoleAdmin, Team: domain.AllTeams}))
	require.NoError(t, repo.Create(ctx, &domain.User{Username: "bob", PasswordHash: "h", Role: domain.RoleReviewer, Team: "Hawk Force"}))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	reviewers, err := repo.List(ctx, domain.RoleReviewer)
	require.NoError(t, err)
	require.Len(t, reviewers, 1)
	assert.Equal(t, "bob", reviewers[0].Username)
}

func TestTeamRepository_SeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := storageGorm.NewTeamRepository(setupDB(t))

	require.NoError(t, repo.SeedMembers(ctx, domain.Teams))
	require.NoError(t, repo.SeedMembers(ctx, domain.Teams))

	members, err := repo.GetMembers(ctx, "Speed Demons")
	require.NoError(t, err)
	assert.ElementsMatch(t, domain.Teams[2].Members, members)

	members, err = repo.GetMembers(ctx, "Unknown")
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	txm := storageGorm.NewTxManager(setupDB(t))

	boom := errors.New("boom")
	err := txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		if err := tx.FeedbackRepo().Create(ctx, &domain.FeedbackEntry{
			Reviewer: "bob", TeamMember: "Nisha", Text: "lost", Team: "Guarding Tigers",
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var entries []domain.FeedbackEntry
	err = txm.Do(ctx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		entries, err = tx.FeedbackRepo().List(ctx, domain.FeedbackFilter{})
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, txm.Ping(ctx))
}

func TestSessionStore_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storageGorm.NewSessionStore(ctx, setupDB(t), []byte("0123456789abcdef0123456789abcdef"), 3600, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	s, err := store.New(req, "feedback_session")
	require.NoError(t, err)
	s.Values["username"] = "bob"
	require.NoError(t, s.Save(req, w))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].HttpOnly)

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookies[0])

	s2, err := store.Get(req2, "feedback_session")
	require.NoError(t, err)
	assert.Equal(t, "bob", s2.Values["username"])
}
