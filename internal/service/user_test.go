package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedbackTracker/internal/domain"
	"feedbackTracker/internal/mocks"
	"feedbackTracker/internal/service"
	"feedbackTracker/internal/storage"
)

var adminSession = &domain.Session{Username: "admin", Role: domain.RoleAdmin, Team: domain.AllTeams}

func TestLogin_UserNotFound(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "ghost").
				Return(nil, storage.ErrNotFound)

			_ = fn(context.Background(), mockTx)
		}).Return(domain.ErrInvalidCredentials)

	// Act
	sess, err := svc.Login(context.Background(), "ghost", "pw")

	// Assert
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	_, err := svc.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestEnsureDefaultAdmin_AlreadyExists(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("ExistsByUsername", mock.Anything, "admin").Return(true, nil)

			_ = fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	err := svc.EnsureDefaultAdmin(context.Background(), "admin", "admin123")

	// Assert
	require.NoError(t, err)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnsureDefaultAdmin_ExistingAdminSkipsHashing(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)
	// bcrypt отвергает пароли длиннее 72 байт, хеширование здесь завершилось бы ошибкой
	longPassword := strings.Repeat("p", 100)
	var txErr error

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("ExistsByUsername", mock.Anything, "admin").Return(true, nil)

			txErr = fn(context.Background(), mockTx)
		}).Return(nil)

	// Act
	err := svc.EnsureDefaultAdmin(context.Background(), "admin", longPassword)

	// Assert
	require.NoError(t, err)
	require.NoError(t, txErr)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_UsernameExists(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("ExistsByUsername", mock.Anything, "Alice").Return(true, nil)

			_ = fn(context.Background(), mockTx)
		}).Return(domain.ErrUsernameExists)

	// Act
	user, err := svc.CreateUser(context.Background(), adminSession, &domain.CreateUserInput{
		Username: " Alice ",
		Password: "pw",
		Team:     "Hawk Force",
	})

	// Assert
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestCreateUser_StorageConflictMapsToUsernameExists(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	// Гонка: проверка прошла, но вставка упала на первичном ключе
	mockTxMgr.On("Do", mock.Anything, mock.Anything).Return(storage.ErrAlreadyExists)

	// Act
	_, err := svc.CreateUser(context.Background(), adminSession, &domain.CreateUserInput{
		Username: "root",
		Password: "pw",
		Role:     "admin",
	})

	// Assert
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	mockTxMgr := mocks.NewTxManager(t)
	svc := service.New(mockTxMgr)

	_, err := svc.CreateUser(context.Background(), adminSession, &domain.CreateUserInput{
		Username: "x",
		Password: "pw",
		Role:     "owner",
	})

	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeInvalidInput, domainErr.Code)
}

func TestSetAssignedMembers_NotReviewer(t *testing.T) {
	// Arrange
	mockTxMgr := mocks.NewTxManager(t)
	mockTx := mocks.NewTx(t)
	mockUserRepo := mocks.NewUserRepository(t)

	svc := service.New(mockTxMgr)

	mockTxMgr.On("Do", mock.Anything, mock.AnythingOfType("func(context.Context, storage.Tx) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context, storage.Tx) error)

			mockTx.On("UserRepo").Return(mockUserRepo)
			mockUserRepo.On("GetByUsername", mock.Anything, "admin").
				Return(&domain.User{Username: "admin", Role: domain.RoleAdmin, Team: domain.AllTeams}, nil)

			_ = fn(context.Background(), mockTx)
		}).Return(domain.InvalidInput("assigned members apply to reviewers only"))

	// Act
	_, err := svc.SetAssignedMembers(context.Background(), adminSession, "admin", []string{"Nisha"})

	// Assert
	var domainErr *domain.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrorCodeInvalidInput, domainErr.Code)
}
