package repositories

import (
	"context"
	"errors"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrDuplicateSlug is returned when a template slug is already taken.
var ErrDuplicateSlug = errors.New("template slug is already in use")

// ITemplateRepository is the template catalog access interface.
type ITemplateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, id uint) (*models.Template, error)
	FindBySlug(ctx context.Context, slug string) (*models.Template, error)
	FindAll(ctx context.Context) ([]models.Template, error)
	FindActive(ctx context.Context) ([]models.Template, error)
	Update(ctx context.Context, template *models.Template) error
	Delete(ctx context.Context, template *models.Template, deletedByUserID uint) error
}

// TemplateRepository implements ITemplateRepository on GORM.
type TemplateRepository struct {
	db   *gorm.DB
	base *BaseRepository[models.Template]
}

// NewTemplateRepository builds a repository on the shared connection.
func NewTemplateRepository() ITemplateRepository {
	db := configs.GetDB()
	return &TemplateRepository{db: db, base: NewBaseRepository[models.Template](db)}
}

// NewTemplateRepositoryTx builds a transaction-scoped repository.
func NewTemplateRepositoryTx(tx *gorm.DB) ITemplateRepository {
	return &TemplateRepository{db: tx, base: NewBaseRepository[models.Template](tx)}
}

func (r *TemplateRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create inserts a catalog row; a slug collision surfaces as ErrDuplicateSlug
// so the admin form can report it instead of overwriting.
func (r *TemplateRepository) Create(ctx context.Context, template *models.Template) error {
	if template == nil || template.Slug == "" {
		return errors.New("a template without a slug cannot be created")
	}
	err := r.base.Create(ctx, template)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlug
		}
		configslog.Log.Error("TemplateRepository.Create: DB error", zap.String("slug", template.Slug), zap.Error(err))
	}
	return err
}

func (r *TemplateRepository) FindByID(ctx context.Context, id uint) (*models.Template, error) {
	return r.base.FindByID(ctx, id)
}

func (r *TemplateRepository) FindBySlug(ctx context.Context, slug string) (*models.Template, error) {
	if slug == "" {
		return nil, ErrNotFound
	}
	var template models.Template
	err := r.getDB(ctx).Where("slug = ?", slug).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("TemplateRepository.FindBySlug: DB error", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return &template, nil
}

func (r *TemplateRepository) FindAll(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	err := r.getDB(ctx).Order("category asc, name asc").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) FindActive(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	err := r.getDB(ctx).Where("is_active = ?", true).Order("category asc, name asc").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Update(ctx context.Context, template *models.Template) error {
	if template == nil || template.ID == 0 {
		return errors.New("the template to update is not valid")
	}
	err := r.base.Update(ctx, template)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateSlug
	}
	return err
}

func (r *TemplateRepository) Delete(ctx context.Context, template *models.Template, deletedByUserID uint) error {
	if template == nil || template.ID == 0 {
		return errors.New("the template to delete is not valid")
	}
	return r.base.Delete(ctx, template, deletedByUserID)
}

var _ ITemplateRepository = (*TemplateRepository)(nil)
