package repositories

import (
	"context"
	"errors"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IOrderRepository is the payment order access interface.
type IOrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByRef(ctx context.Context, ref string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]models.Order, error)
	FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error)
	Update(ctx context.Context, order *models.Order) error
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
}

// OrderRepository implements IOrderRepository on GORM.
type OrderRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Order]
}

func newOrderRepository(db *gorm.DB) *OrderRepository {
	base := NewBaseRepository[models.Order](db)
	base.SetAllowedSortColumns([]string{"id", "created_at", "status", "plan", "amount_idr"})
	return &OrderRepository{db: db, base: base}
}

// NewOrderRepository builds a repository on the shared connection.
func NewOrderRepository() IOrderRepository {
	return newOrderRepository(configs.GetDB())
}

// NewOrderRepositoryTx builds a transaction-scoped repository.
func NewOrderRepositoryTx(tx *gorm.DB) IOrderRepository {
	return newOrderRepository(tx)
}

func (r *OrderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order == nil || order.UserID == 0 || order.Ref == "" {
		return errors.New("an order needs an owner and a reference")
	}
	return r.base.Create(ctx, order)
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	return r.base.FindByID(ctx, id)
}

func (r *OrderRepository) FindByRef(ctx context.Context, ref string) (*models.Order, error) {
	if ref == "" {
		return nil, ErrNotFound
	}
	var order models.Order
	err := r.getDB(ctx).Where("ref = ?", ref).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("OrderRepository.FindByRef: DB error", zap.String("ref", ref), zap.Error(err))
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, errors.New("invalid user ID")
	}
	var orders []models.Order
	err := r.getDB(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindAllPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Order, int64, error) {
	var orders []models.Order
	var totalCount int64
	query := r.getDB(ctx).Model(&models.Order{})

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("OrderRepository.Count: DB error", zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return orders, 0, nil
	}

	sortBy := params.SortBy
	if !r.base.SortColumnAllowed(sortBy) {
		sortBy = "created_at"
	}
	err := query.Preload("User").
		Order(sortBy + " " + params.OrderBy).
		Limit(params.PerPage).Offset(params.CalculateOffset()).
		Find(&orders).Error
	if err != nil {
		configslog.Log.Error("OrderRepository.Find: DB error", zap.Error(err))
		return nil, totalCount, err
	}
	return orders, totalCount, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *models.Order) error {
	if order == nil || order.ID == 0 {
		return errors.New("the order to update is not valid")
	}
	return r.base.Update(ctx, order)
}

func (r *OrderRepository) CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

var _ IOrderRepository = (*OrderRepository)(nil)
