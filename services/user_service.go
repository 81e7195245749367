package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/repositories"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// validate is the shared payload validator for the service layer.
var validate = validator.New()

// UserServiceError is the typed error set of this service.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound         UserServiceError = "user not found"
	ErrEmailAlreadyInUse    UserServiceError = "email address is already registered"
	ErrInvalidCredentials   UserServiceError = "email or password is incorrect"
	ErrUserCreationFailed   UserServiceError = "account could not be created"
	ErrUserUpdateFailed     UserServiceError = "account could not be updated"
	ErrUserDeletionFailed   UserServiceError = "account could not be deleted"
	ErrUserInvalidInput     UserServiceError = "invalid account data"
	ErrPasswordHashFailed   UserServiceError = "password could not be processed"
	ErrAccountDeactivated   UserServiceError = "account is deactivated"
	ErrUnknownPlanRequested UserServiceError = "unknown plan"
)

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// IUserService covers account lifecycle and admin user management.
type IUserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error
	SetUserPlan(ctx context.Context, adminUserID uint, userID uint, plan models.Plan, expiresAt *time.Time) error
	SetUserActive(ctx context.Context, adminUserID uint, userID uint, active bool) error
	DeleteUser(ctx context.Context, adminUserID uint, userID uint) error
	GetUserCount(ctx context.Context) (int64, error)
}

// UserService implements IUserService.
type UserService struct {
	repo repositories.IUserRepository
	db   *gorm.DB
}

// NewUserService builds the service with its default repository.
func NewUserService() IUserService {
	return &UserService{
		repo: repositories.NewUserRepository(),
		db:   configs.GetDB(),
	}
}

// Register creates an account on the FREE plan. The FREE validity window
// starts at registration so stale free accounts eventually expire too.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUserInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailAlreadyInUse
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailed
	}

	var expiresAt *time.Time
	if validity := models.LimitsFor(models.PlanFree).ValidityDays; validity != nil {
		t := time.Now().UTC().AddDate(0, 0, *validity)
		expiresAt = &t
	}

	user := &models.User{
		Name:          input.Name,
		Email:         input.Email,
		PasswordHash:  string(hash),
		IsActive:      true,
		Plan:          models.PlanFree,
		PlanExpiresAt: expiresAt,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyInUse
		}
		configslog.Log.Error("Register: repository error", zap.String("email", input.Email), zap.Error(err))
		return nil, ErrUserCreationFailed
	}

	configslog.SLog.Infof("Account registered: ID %d, email %s", user.ID, user.Email)
	return user, nil
}

// Authenticate verifies the credentials and account status.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsersPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	users, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: users,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// UpdatePassword changes the password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrUserInvalidInput)
	}
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailed
	}
	user.PasswordHash = string(hash)
	ctxUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(ctxUser, user); err != nil {
		configslog.Log.Error("UpdatePassword: repository error", zap.Uint("userID", userID), zap.Error(err))
		return ErrUserUpdateFailed
	}
	return nil
}

// SetUserPlan is the admin override for a user's plan pair.
func (s *UserService) SetUserPlan(ctx context.Context, adminUserID uint, userID uint, plan models.Plan, expiresAt *time.Time) error {
	if !plan.Valid() {
		return ErrUnknownPlanRequested
	}
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.UpdatePlan(ctxAdmin, userID, plan, expiresAt); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrUserUpdateFailed
	}
	configslog.SLog.Infof("Plan set by admin: user %d -> %s (admin %d)", userID, plan, adminUserID)
	return nil
}

func (s *UserService) SetUserActive(ctx context.Context, adminUserID uint, userID uint, active bool) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Update(ctxAdmin, user); err != nil {
		return ErrUserUpdateFailed
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, adminUserID uint, userID uint) error {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsSystem {
		return fmt.Errorf("%w: system accounts cannot be deleted", ErrUserInvalidInput)
	}
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Delete(ctxAdmin, user, adminUserID); err != nil {
		configslog.Log.Error("DeleteUser: repository error", zap.Uint("userID", userID), zap.Error(err))
		return ErrUserDeletionFailed
	}
	configslog.SLog.Infof("Account deleted: ID %d (admin %d)", userID, adminUserID)
	return nil
}

func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.repo.CountAll(ctx)
}

var _ IUserService = (*UserService)(nil)
