package services

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/themes"
	"undangan.link/repositories"

	"go.uber.org/zap"
)

// TemplateServiceError is the typed error set of this service.
type TemplateServiceError string

func (e TemplateServiceError) Error() string { return string(e) }

const (
	ErrTemplateNotFound      TemplateServiceError = "template not found"
	ErrTemplateSlugTaken     TemplateServiceError = "template slug is already in use"
	ErrTemplateInvalidInput  TemplateServiceError = "invalid template data"
	ErrTemplateThemeMissing  TemplateServiceError = "no theme is registered for this slug"
	ErrTemplateUpdateFailed  TemplateServiceError = "template could not be updated"
)

// ITemplateService manages the template catalog (admin) and exposes the
// choices available to a plan (panel).
type ITemplateService interface {
	GetAll(ctx context.Context) ([]models.Template, error)
	GetAvailableForPlan(ctx context.Context, plan models.Plan) ([]models.Template, error)
	GetByID(ctx context.Context, id uint) (*models.Template, error)
	Create(ctx context.Context, adminUserID uint, template models.Template) (*models.Template, error)
	Update(ctx context.Context, adminUserID uint, id uint, name string, category models.TemplateCategory, previewURL string, isActive bool) error
	Delete(ctx context.Context, adminUserID uint, id uint) error
}

// TemplateService implements ITemplateService.
type TemplateService struct {
	repo repositories.ITemplateRepository
}

// NewTemplateService builds the service with its default repository.
func NewTemplateService() ITemplateService {
	return &TemplateService{repo: repositories.NewTemplateRepository()}
}

func (s *TemplateService) GetAll(ctx context.Context) ([]models.Template, error) {
	return s.repo.FindAll(ctx)
}

// GetAvailableForPlan filters the active catalog down to the categories the
// plan unlocks. Unknown plans see the FREE selection.
func (s *TemplateService) GetAvailableForPlan(ctx context.Context, plan models.Plan) ([]models.Template, error) {
	templates, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	limits := models.LimitsFor(plan)
	available := make([]models.Template, 0, len(templates))
	for _, t := range templates {
		if limits.AllowsTemplateCategory(t.Category) {
			available = append(available, t)
		}
	}
	return available, nil
}

func (s *TemplateService) GetByID(ctx context.Context, id uint) (*models.Template, error) {
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return template, nil
}

// Create adds a catalog row. The slug must have a registered theme: a
// catalog entry nothing can render would publish broken invitations.
func (s *TemplateService) Create(ctx context.Context, adminUserID uint, template models.Template) (*models.Template, error) {
	template.Slug = strings.TrimSpace(strings.ToLower(template.Slug))
	if template.Slug == "" || template.Name == "" {
		return nil, ErrTemplateInvalidInput
	}
	if !themes.Exists(template.Slug) {
		return nil, ErrTemplateThemeMissing
	}
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Create(ctxAdmin, &template); err != nil {
		if errors.Is(err, repositories.ErrDuplicateSlug) {
			return nil, ErrTemplateSlugTaken
		}
		configslog.Log.Error("Template create failed", zap.String("slug", template.Slug), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("Template created: %s (admin %d)", template.Slug, adminUserID)
	return &template, nil
}

// Update edits the mutable fields. The slug is immutable once created; it is
// the join key to both the theme registry and existing weddings.
func (s *TemplateService) Update(ctx context.Context, adminUserID uint, id uint, name string, category models.TemplateCategory, previewURL string, isActive bool) error {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrTemplateInvalidInput
	}
	template.Name = name
	template.Category = category
	template.PreviewURL = previewURL
	template.IsActive = isActive

	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Update(ctxAdmin, template); err != nil {
		configslog.Log.Error("Template update failed", zap.Uint("id", id), zap.Error(err))
		return ErrTemplateUpdateFailed
	}
	return nil
}

func (s *TemplateService) Delete(ctx context.Context, adminUserID uint, id uint) error {
	template, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Delete(ctxAdmin, template, adminUserID); err != nil {
		return TemplateServiceError("template could not be deleted")
	}
	configslog.SLog.Infof("Template deleted: %s (admin %d)", template.Slug, adminUserID)
	return nil
}

var _ ITemplateService = (*TemplateService)(nil)
