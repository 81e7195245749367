package services

import (
	"context"
	"errors"
	"fmt"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/queryparams"
	"undangan.link/pkg/themes"
	"undangan.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeddingServiceError is the typed error set of this service.
type WeddingServiceError string

func (e WeddingServiceError) Error() string { return string(e) }

const (
	ErrWeddingNotFound       WeddingServiceError = "invitation not found"
	ErrWeddingForbidden      WeddingServiceError = "you are not allowed to manage this invitation"
	ErrWeddingCreationFailed WeddingServiceError = "invitation could not be created"
	ErrWeddingUpdateFailed   WeddingServiceError = "invitation could not be updated"
	ErrWeddingInvalidInput   WeddingServiceError = "invalid invitation data"
	ErrGalleryLimitExceeded  WeddingServiceError = "gallery exceeds the photo limit of your plan"
	ErrFeatureNotInPlan      WeddingServiceError = "this section is not included in your plan"
	ErrTemplateNotAvailable  WeddingServiceError = "template is not available for your plan"
)

// IWeddingService manages a user's invitation row and document.
type IWeddingService interface {
	GetOrCreateForUser(ctx context.Context, userID uint) (*models.Wedding, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Wedding, error)
	GetBySlug(ctx context.Context, slug string) (*models.Wedding, error)
	UpdateData(ctx context.Context, userID uint, data models.WeddingData) error
	SelectTemplate(ctx context.Context, userID uint, templateID uint) error
	SetPublished(ctx context.Context, userID uint, published bool) error
	GetAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	ModeratePublish(ctx context.Context, adminUserID uint, weddingID uint, published bool) error
	DeleteWedding(ctx context.Context, adminUserID uint, weddingID uint) error
	GetWeddingCounts(ctx context.Context) (total int64, published int64, err error)
}

// WeddingService implements IWeddingService.
type WeddingService struct {
	repo         repositories.IWeddingRepository
	templateRepo repositories.ITemplateRepository
	userService  IUserService
	db           *gorm.DB
}

// NewWeddingService builds the service with its default dependencies.
func NewWeddingService() IWeddingService {
	return &WeddingService{
		repo:         repositories.NewWeddingRepository(),
		templateRepo: repositories.NewTemplateRepository(),
		userService:  NewUserService(),
		db:           configs.GetDB(),
	}
}

// GetOrCreateForUser returns the user's wedding row, creating an empty one
// with a fresh slug on first access.
func (s *WeddingService) GetOrCreateForUser(ctx context.Context, userID uint) (*models.Wedding, error) {
	if userID == 0 {
		return nil, ErrWeddingInvalidInput
	}
	wedding, err := s.repo.FindByUserID(ctx, userID)
	if err == nil {
		return wedding, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	ctxUser := models.ContextWithUserID(ctx, userID)
	wedding = &models.Wedding{UserID: userID, Data: models.WeddingData{}}
	if err := s.repo.Create(ctxUser, wedding); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against ourselves; the row exists now.
			return s.repo.FindByUserID(ctx, userID)
		}
		configslog.Log.Error("GetOrCreateForUser: create failed", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrWeddingCreationFailed
	}
	configslog.SLog.Infof("Invitation created: ID %d, slug %s (user %d)", wedding.ID, wedding.Slug, userID)
	return wedding, nil
}

func (s *WeddingService) GetByUserID(ctx context.Context, userID uint) (*models.Wedding, error) {
	wedding, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}
	return wedding, nil
}

func (s *WeddingService) GetBySlug(ctx context.Context, slug string) (*models.Wedding, error) {
	wedding, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrWeddingNotFound
		}
		return nil, err
	}
	return wedding, nil
}

// ValidateAgainstPlan rejects document content the plan does not include.
// Sections the plan lacks must not be saved at all; the render gate is the
// second line of defence, not the only one.
func ValidateAgainstPlan(data *models.WeddingData, limits models.PlanLimits) error {
	if data == nil {
		return ErrWeddingInvalidInput
	}
	if !limits.AllowsGalleryCount(len(data.Gallery)) {
		return ErrGalleryLimitExceeded
	}
	type gated struct {
		present bool
		feature models.Feature
	}
	checks := []gated{
		{data.Music != nil, models.FeatureMusic},
		{data.Video != nil, models.FeatureVideo},
		{data.Gifts != nil, models.FeatureGifts},
		{data.LoveStory != nil && data.LoveStory.Enabled, models.FeatureLoveStory},
		{data.Streaming != nil, models.FeatureStreaming},
	}
	for _, check := range checks {
		if check.present && !limits.FeatureEnabled(check.feature) {
			return fmt.Errorf("%w: %s", ErrFeatureNotInPlan, check.feature)
		}
	}
	return nil
}

// UpdateData replaces the document after plan validation. The legacy
// singular event field never survives an editor save; the editor always
// writes the events array.
func (s *WeddingService) UpdateData(ctx context.Context, userID uint, data models.WeddingData) error {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return ErrWeddingForbidden
	}
	if err := ValidateAgainstPlan(&data, user.EffectiveLimits()); err != nil {
		return err
	}
	data.Event = nil

	wedding, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	ctxUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.UpdateData(ctxUser, wedding.ID, data); err != nil {
		configslog.Log.Error("UpdateData: repository error", zap.Uint("weddingID", wedding.ID), zap.Error(err))
		return ErrWeddingUpdateFailed
	}
	return nil
}

// SelectTemplate binds a catalog template to the wedding. The template must
// be active and its category unlocked by the user's plan.
func (s *WeddingService) SelectTemplate(ctx context.Context, userID uint, templateID uint) error {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return ErrWeddingForbidden
	}
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTemplateNotAvailable
		}
		return err
	}
	if !template.IsActive || !user.EffectiveLimits().AllowsTemplateCategory(template.Category) {
		return ErrTemplateNotAvailable
	}
	if !themes.Exists(template.Slug) {
		configslog.Log.Warn("SelectTemplate: catalog row has no registered theme", zap.String("slug", template.Slug))
		return ErrTemplateNotAvailable
	}

	wedding, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	wedding.TemplateID = &template.ID
	ctxUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(ctxUser, wedding); err != nil {
		return ErrWeddingUpdateFailed
	}
	configslog.SLog.Infof("Template selected: wedding %d -> %s", wedding.ID, template.Slug)
	return nil
}

func (s *WeddingService) SetPublished(ctx context.Context, userID uint, published bool) error {
	wedding, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if published && wedding.TemplateID == nil {
		return fmt.Errorf("%w: select a template before publishing", ErrWeddingInvalidInput)
	}
	wedding.IsPublished = published
	ctxUser := models.ContextWithUserID(ctx, userID)
	if err := s.repo.Update(ctxUser, wedding); err != nil {
		return ErrWeddingUpdateFailed
	}
	return nil
}

func (s *WeddingService) GetAllPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	weddings, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		return nil, err
	}
	return &queryparams.PaginatedResult{
		Data: weddings,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page, PerPage: params.PerPage,
			TotalItems: totalCount, TotalPages: queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// ModeratePublish lets an admin force-unpublish (or restore) an invitation.
func (s *WeddingService) ModeratePublish(ctx context.Context, adminUserID uint, weddingID uint, published bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var wedding models.Wedding
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&wedding, weddingID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWeddingNotFound
			}
			return err
		}
		wedding.IsPublished = published
		ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
		repoTx := repositories.NewWeddingRepositoryTx(tx)
		if err := repoTx.Update(ctxAdmin, &wedding); err != nil {
			return ErrWeddingUpdateFailed
		}
		configslog.SLog.Infof("Invitation moderation: wedding %d published=%t (admin %d)", weddingID, published, adminUserID)
		return nil
	})
}

func (s *WeddingService) DeleteWedding(ctx context.Context, adminUserID uint, weddingID uint) error {
	wedding, err := s.repo.FindByID(ctx, weddingID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrWeddingNotFound
		}
		return err
	}
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.Delete(ctxAdmin, wedding, adminUserID); err != nil {
		configslog.Log.Error("DeleteWedding: repository error", zap.Uint("weddingID", weddingID), zap.Error(err))
		return WeddingServiceError("invitation could not be deleted")
	}
	configslog.SLog.Infof("Invitation deleted: ID %d (admin %d)", weddingID, adminUserID)
	return nil
}

func (s *WeddingService) GetWeddingCounts(ctx context.Context) (int64, int64, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return 0, 0, err
	}
	published, err := s.repo.CountPublished(ctx)
	if err != nil {
		return 0, 0, err
	}
	return total, published, nil
}

var _ IWeddingService = (*WeddingService)(nil)
