package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"eldercare-manager-api/config"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/pkg/jwt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthUsecase(t *testing.T) (AuthUsecase, *MockUserRepository, sqlmock.Sqlmock, *miniredis.Miniredis) {
	t.Helper()

	db, mockDB := newTestDB(t)
	userRepo := new(MockUserRepository)
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Hour,
	})

	uc := NewAuthUsecase(db, newTestLogger(), userRepo, jwtService, redisClient)
	return uc, userRepo, mockDB, mr
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username:        "caregiver01",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		RealName:        "Li Hua",
		Phone:           "13812345678",
		ElderName:       "Li Ming",
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	uc, _, _, _ := setupAuthUsecase(t)

	req := registerRequest()
	req.ConfirmPassword = "different"

	_, err := uc.Register(context.Background(), req)

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(&entity.User{ID: 1}, nil)

	_, err := uc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(nil, nil)
	userRepo.On("FindByPhone", mock.Anything, "13812345678").Return(&entity.User{ID: 2}, nil)

	_, err := uc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestRegister_HashesPasswordAndEnablesAccount(t *testing.T) {
	uc, userRepo, mockDB, _ := setupAuthUsecase(t)

	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(nil, nil)
	userRepo.On("FindByPhone", mock.Anything, "13812345678").Return(nil, nil)

	var created *entity.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.User)
			created.ID = 1
		}).
		Return(nil)

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	resp, err := uc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, entity.UserStatusEnabled, resp.Status)

	require.NotNil(t, created)
	assert.NotEqual(t, "secret123", created.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))

	assert.NoError(t, mockDB.ExpectationsWereMet())
	userRepo.AssertExpectations(t)
}

func TestLogin_ResolvesAccountByPhone(t *testing.T) {
	uc, userRepo, _, mr := setupAuthUsecase(t)

	user := &entity.User{
		ID:       1,
		Username: "caregiver01",
		Phone:    "13812345678",
		Password: hashPassword(t, "secret123"),
		Status:   entity.UserStatusEnabled,
	}
	userRepo.On("FindByUsername", mock.Anything, "13812345678").Return(nil, nil)
	userRepo.On("FindByPhone", mock.Anything, "13812345678").Return(user, nil)

	resp, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "13812345678",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "caregiver01", resp.User.Username)

	// The issued token is registered for revocation checks.
	var tokenKeys []string
	for _, key := range mr.Keys() {
		if strings.HasPrefix(key, "ec:token:1:") {
			tokenKeys = append(tokenKeys, key)
		}
	}
	require.Len(t, tokenKeys, 1)
	val, err := mr.Get(tokenKeys[0])
	require.NoError(t, err)
	assert.Equal(t, "valid", val)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	user := &entity.User{
		ID:       1,
		Username: "caregiver01",
		Password: hashPassword(t, "secret123"),
		Status:   entity.UserStatusEnabled,
	}
	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(user, nil)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "caregiver01",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogin_UnknownAccount(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	userRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil)
	userRepo.On("FindByPhone", mock.Anything, "nobody").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "nobody").Return(nil, nil)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_DisabledAccount(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	user := &entity.User{
		ID:       1,
		Username: "caregiver01",
		Password: hashPassword(t, "secret123"),
		Status:   entity.UserStatusDisabled,
	}
	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(user, nil)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "caregiver01",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLogin_WrongPasswordOnDisabledAccount(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	user := &entity.User{
		ID:       1,
		Username: "caregiver01",
		Password: hashPassword(t, "secret123"),
		Status:   entity.UserStatusDisabled,
	}
	userRepo.On("FindByUsername", mock.Anything, "caregiver01").Return(user, nil)

	// The password check comes before the status check, so a bad password
	// on a disabled account reports the password error.
	_, err := uc.Login(context.Background(), &dto.LoginRequest{
		Username: "caregiver01",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLogout_RemovesToken(t *testing.T) {
	uc, _, _, mr := setupAuthUsecase(t)

	require.NoError(t, mr.Set(TokenKey(1, "abc"), "valid"))

	err := uc.Logout(context.Background(), 1, "abc")

	require.NoError(t, err)
	assert.False(t, mr.Exists(TokenKey(1, "abc")))
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	uc, userRepo, _, _ := setupAuthUsecase(t)

	userRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := uc.GetCurrentUser(context.Background(), 404)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
