package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound is the repository-level miss every service maps to its own
// domain error.
var ErrNotFound = errors.New("record not found")

// IBaseRepository covers the CRUD every model-specific repository shares.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T, deletedByUserID uint) error
	Count(ctx context.Context) (int64, error)
}

// BaseRepository is the generic implementation the concrete repositories
// embed. Sorting is restricted to an allowlist set per model.
type BaseRepository[T any] struct {
	db                 *gorm.DB
	allowedSortColumns map[string]bool
}

// NewBaseRepository wraps a DB (or transaction) handle.
func NewBaseRepository[T any](db *gorm.DB) *BaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSortColumns: map[string]bool{}}
}

// SetAllowedSortColumns replaces the sort allowlist.
func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	allowed := make(map[string]bool, len(columns))
	for _, col := range columns {
		allowed[col] = true
	}
	r.allowedSortColumns = allowed
}

// SortColumnAllowed reports whether list endpoints may sort by col.
func (r *BaseRepository[T]) SortColumnAllowed(col string) bool {
	return r.allowedSortColumns[col]
}

// getDB prefers a transaction smuggled through the context over the base
// handle, so tx-scoped and plain calls share one code path.
func (r *BaseRepository[T]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var entity T
	err := r.getDB(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.getDB(ctx).Save(entity).Error
}

// Delete soft deletes and stamps DeletedBy in one update, guarded against
// double deletion by the deleted_at IS NULL predicate.
func (r *BaseRepository[T]) Delete(ctx context.Context, entity *T, deletedByUserID uint) error {
	now := time.Now().UTC()
	updateData := map[string]interface{}{"deleted_at": now, "deleted_by": &deletedByUserID}
	result := r.getDB(ctx).Model(entity).Where("deleted_at IS NULL").Updates(updateData)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BaseRepository[T]) Count(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := r.getDB(ctx).Model(&entity).Count(&count).Error
	return count, err
}
