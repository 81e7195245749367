package repositories

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IWeddingRepository is the wedding table access interface.
type IWeddingRepository interface {
	Create(ctx context.Context, wedding *models.Wedding) error
	FindByID(ctx context.Context, id uint) (*models.Wedding, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Wedding, error)
	FindBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Wedding, int64, error)
	Update(ctx context.Context, wedding *models.Wedding) error
	UpdateData(ctx context.Context, weddingID uint, data models.WeddingData) error
	Delete(ctx context.Context, wedding *models.Wedding, deletedByUserID uint) error
	CountAll(ctx context.Context) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
}

// WeddingRepository implements IWeddingRepository on GORM.
type WeddingRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Wedding]
}

func newWeddingRepository(db *gorm.DB) *WeddingRepository {
	base := NewBaseRepository[models.Wedding](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "slug", "is_published"})
	return &WeddingRepository{db: db, base: base}
}

// NewWeddingRepository builds a repository on the shared connection.
func NewWeddingRepository() IWeddingRepository {
	return newWeddingRepository(configs.GetDB())
}

// NewWeddingRepositoryTx builds a transaction-scoped repository.
func NewWeddingRepositoryTx(tx *gorm.DB) IWeddingRepository {
	return newWeddingRepository(tx)
}

func (r *WeddingRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *WeddingRepository) Create(ctx context.Context, wedding *models.Wedding) error {
	if wedding == nil || wedding.UserID == 0 {
		return errors.New("a wedding without an owner cannot be created")
	}
	return r.getDB(ctx).Create(wedding).Error
}

func (r *WeddingRepository) FindByID(ctx context.Context, id uint) (*models.Wedding, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var wedding models.Wedding
	err := r.getDB(ctx).Preload("Template").Preload("User").First(&wedding, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Wedding, error) {
	if userID == 0 {
		return nil, ErrNotFound
	}
	var wedding models.Wedding
	err := r.getDB(ctx).Preload("Template").Where("user_id = ?", userID).First(&wedding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingRepository.FindByUserID: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) FindBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var wedding models.Wedding
	err := r.getDB(ctx).Preload("Template").Preload("User").Where("slug = ?", slug).First(&wedding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("WeddingRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &wedding, nil
}

func (r *WeddingRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Wedding, int64, error) {
	var weddings []models.Wedding
	var totalCount int64
	query := r.getDB(ctx).Model(&models.Wedding{})

	if params.Name != "" {
		query = query.Where("lower(slug) LIKE ?", "%"+strings.ToLower(params.Name)+"%")
	}
	if params.Status != "" {
		query = query.Where("is_published = ?", params.Status == "true")
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("WeddingRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return weddings, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.SortColumnAllowed(sortBy) {
		sortBy = "created_at"
	}
	err := query.Preload("Template").Preload("User").
		Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&weddings).Error
	if err != nil {
		configslog.Log.Error("WeddingRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return weddings, totalCount, nil
}

func (r *WeddingRepository) Update(ctx context.Context, wedding *models.Wedding) error {
	if wedding == nil || wedding.ID == 0 {
		return errors.New("the wedding to update is not valid")
	}
	return r.getDB(ctx).Save(wedding).Error
}

// UpdateData rewrites only the document column, leaving the row's other
// fields (slug, template, publish flag) untouched.
func (r *WeddingRepository) UpdateData(ctx context.Context, weddingID uint, data models.WeddingData) error {
	if weddingID == 0 {
		return errors.New("invalid wedding ID")
	}
	result := r.getDB(ctx).Model(&models.Wedding{}).Where("id = ?", weddingID).Update("data", data)
	if result.Error != nil {
		configslog.Log.Error("WeddingRepository.UpdateData: DB error", zap.Uint("weddingID", weddingID), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *WeddingRepository) Delete(ctx context.Context, wedding *models.Wedding, deletedByUserID uint) error {
	if wedding == nil || wedding.ID == 0 {
		return errors.New("the wedding to delete is not valid")
	}
	return r.base.Delete(ctx, wedding, deletedByUserID)
}

func (r *WeddingRepository) CountAll(ctx context.Context) (int64, error) {
	return r.base.Count(ctx)
}

func (r *WeddingRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Wedding{}).Where("is_published = ?", true).Count(&count).Error
	return count, err
}

var _ IWeddingRepository = (*WeddingRepository)(nil)
