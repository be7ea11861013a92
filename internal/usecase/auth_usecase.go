package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"
	"eldercare-manager-api/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPasswordMismatch      = errors.New("password confirmation does not match")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPhoneAlreadyExists    = errors.New("phone number already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrPasswordIncorrect     = errors.New("incorrect password")
	ErrUserDisabled          = errors.New("account is disabled")
	ErrUserNotFound          = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID int64, tokenID string) error
	GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

// TokenKey builds the Redis key an issued access token lives under.
func TokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("ec:token:%d:%s", userID, tokenID)
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	// Duplicate checks run in a fixed order so clients get a stable
	// first failure; the unique indexes still back them up under races.
	if existing, err := u.userRepo.FindByUsername(u.db.WithContext(ctx), req.Username); err != nil {
		u.log.Warnf("Failed to check username: %+v", err)
		return nil, err
	} else if existing != nil {
		return nil, ErrUsernameAlreadyExists
	}

	if existing, err := u.userRepo.FindByPhone(u.db.WithContext(ctx), req.Phone); err != nil {
		u.log.Warnf("Failed to check phone: %+v", err)
		return nil, err
	} else if existing != nil {
		return nil, ErrPhoneAlreadyExists
	}

	if req.Email != "" {
		if existing, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email); err != nil {
			u.log.Warnf("Failed to check email: %+v", err)
			return nil, err
		} else if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Username:     req.Username,
		Password:     string(hashedPassword),
		RealName:     req.RealName,
		Phone:        req.Phone,
		Email:        req.Email,
		ElderName:    req.ElderName,
		ElderProfile: req.ElderInfo,
		Status:       entity.UserStatusEnabled,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "username") {
			return nil, ErrUsernameAlreadyExists
		}
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.resolveAccount(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Failure order is part of the contract: unknown account, then wrong
	// password, then disabled account.
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrPasswordIncorrect
	}

	if user.Status != entity.UserStatusEnabled {
		return nil, ErrUserDisabled
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.redisClient.Set(ctx, TokenKey(user.ID, tokenID), "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		User:        converter.UserToResponse(user),
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// resolveAccount tries the login identifier as a username, then a phone
// number, then an email.
func (u *authUsecase) resolveAccount(ctx context.Context, identifier string) (*entity.User, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByUsername(db, identifier)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = u.userRepo.FindByPhone(db, identifier)
	if err != nil {
		u.log.Warnf("Failed to find user by phone: %+v", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = u.userRepo.FindByEmail(db, identifier)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	return user, nil
}

// Logout drops the token's Redis entry. Deleting an already-expired key
// still succeeds.
func (u *authUsecase) Logout(ctx context.Context, userID int64, tokenID string) error {
	if err := u.redisClient.Del(ctx, TokenKey(userID, tokenID)).Err(); err != nil {
		u.log.Warnf("Failed to delete access token: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
