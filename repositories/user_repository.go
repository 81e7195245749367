package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository is the user table access interface.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePlan(ctx context.Context, userID uint, plan models.Plan, expiresAt *time.Time) error
	Delete(ctx context.Context, user *models.User, deletedByUserID uint) error
	CountAll(ctx context.Context) (int64, error)
}

// UserRepository implements IUserRepository on GORM.
type UserRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.User]
}

// NewUserRepository builds a repository on the shared connection.
func NewUserRepository() IUserRepository {
	db := configs.GetDB()
	base := NewBaseRepository[models.User](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "email", "plan", "is_active"})
	return &UserRepository{db: db, base: base}
}

// NewUserRepositoryTx builds a transaction-scoped repository.
func NewUserRepositoryTx(tx *gorm.DB) IUserRepository {
	base := NewBaseRepository[models.User](tx)
	base.SetAllowedSortColumns([]string{"id", "created_at", "name", "email", "plan", "is_active"})
	return &UserRepository{db: tx, base: base}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	if user == nil || user.Email == "" {
		return errors.New("a user without an email cannot be created")
	}
	return r.base.Create(ctx, user)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.base.FindByID(ctx, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var user models.User
	err := r.getDB(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64
	query := r.getDB(ctx).Model(&models.User{})

	if params.Name != "" {
		needle := "%" + strings.ToLower(params.Name) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(email) LIKE ?", needle, needle)
	}
	if params.Status != "" {
		query = query.Where("is_active = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("UserRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return users, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.SortColumnAllowed(sortBy) {
		sortBy = "created_at"
	}
	err := query.Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&users).Error
	if err != nil {
		configslog.Log.Error("UserRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return users, totalCount, nil
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	if user == nil || user.ID == 0 {
		return errors.New("the user to update is not valid")
	}
	return r.base.Update(ctx, user)
}

// UpdatePlan sets the plan pair in one statement. Used by the payment webhook
// and by admin overrides.
func (r *UserRepository) UpdatePlan(ctx context.Context, userID uint, plan models.Plan, expiresAt *time.Time) error {
	if userID == 0 {
		return errors.New("invalid user ID")
	}
	result := r.getDB(ctx).Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"plan": plan, "plan_expires_at": expiresAt})
	if result.Error != nil {
		configslog.Log.Error("UserRepository.UpdatePlan: DB error", zap.Uint("userID", userID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, user *models.User, deletedByUserID uint) error {
	if user == nil || user.ID == 0 {
		return errors.New("the user to delete is not valid")
	}
	return r.base.Delete(ctx, user, deletedByUserID)
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

var _ IUserRepository = (*UserRepository)(nil)
