package services

import (
	"context"
	"time"

	"undangan.link/models"
	"undangan.link/pkg/themes"
	"undangan.link/repositories"
)

// PageStatus is the guard state of a public invitation page. The guards are
// mutually exclusive and evaluated in a fixed order: plan expiry first, then
// template selection.
type PageStatus string

const (
	// PageExpired: the owner's plan validity window has passed; nothing of
	// the document is shown.
	PageExpired PageStatus = "expired"
	// PagePreparing: no template selected yet; the invitation is not ready.
	PagePreparing PageStatus = "preparing"
	// PageReady: render the document through the resolved theme.
	PageReady PageStatus = "ready"
)

// SectionVisibility is the render gate's verdict per optional section.
// A section shows only when the document carries it AND the plan allows it.
type SectionVisibility struct {
	Gallery        []models.GalleryImage
	ShowMusic      bool
	ShowVideo      bool
	ShowGifts      bool
	ShowLoveStory  bool
	ShowStreaming  bool
	ShowQuote      bool
	ShowProtocol   bool
	ShowFamily     bool
	ShowWatermark  bool
}

// InvitationPage is everything the public view needs.
type InvitationPage struct {
	Status   PageStatus
	Theme    themes.Theme
	Wedding  *models.Wedding
	Data     *models.WeddingData
	Sections SectionVisibility
	Messages []models.RSVP
	RSVPOpen bool
}

// BuildPage composes the plan gate and the theme registry into the final
// render decision. Pure: everything it needs comes in as arguments.
func BuildPage(owner *models.User, wedding *models.Wedding, now time.Time) InvitationPage {
	if owner == nil || wedding == nil {
		return InvitationPage{Status: PagePreparing}
	}
	if owner.PlanExpiredAt(now) {
		return InvitationPage{Status: PageExpired, Wedding: wedding}
	}
	if wedding.TemplateID == nil || wedding.Template == nil {
		return InvitationPage{Status: PagePreparing, Wedding: wedding}
	}

	limits := owner.EffectiveLimits()
	data := &wedding.Data
	return InvitationPage{
		Status:  PageReady,
		Theme:   themes.Resolve(wedding.Template.Slug),
		Wedding: wedding,
		Data:    data,
		Sections: SectionVisibility{
			Gallery:       data.Gallery[:limits.GalleryCeiling(len(data.Gallery))],
			ShowMusic:     data.HasMusic() && limits.FeatureEnabled(models.FeatureMusic),
			ShowVideo:     data.HasVideo() && limits.FeatureEnabled(models.FeatureVideo),
			ShowGifts:     data.HasGifts() && limits.FeatureEnabled(models.FeatureGifts),
			ShowLoveStory: data.HasLoveStory() && limits.FeatureEnabled(models.FeatureLoveStory),
			ShowStreaming: data.HasStreaming() && limits.FeatureEnabled(models.FeatureStreaming),
			ShowQuote:     data.Quote != nil && data.Quote.Text != "",
			ShowProtocol:  data.Protocol != nil && len(data.Protocol.Items) > 0,
			ShowFamily:    data.ExtendedFamily != nil && len(data.ExtendedFamily.Entries) > 0,
			ShowWatermark: !limits.FeatureEnabled(models.FeatureRemoveWatermark),
		},
		RSVPOpen: data.RSVPOpenAt(now),
	}
}

// IPageService resolves a public slug into a renderable page.
type IPageService interface {
	GetPublicPage(ctx context.Context, slug string) (*InvitationPage, error)
}

// PageService implements IPageService.
type PageService struct {
	weddingRepo repositories.IWeddingRepository
	rsvpRepo    repositories.IRSVPRepository
	now         func() time.Time
}

// NewPageService builds the service with its default dependencies.
func NewPageService() IPageService {
	return &PageService{
		weddingRepo: repositories.NewWeddingRepository(),
		rsvpRepo:    repositories.NewRSVPRepository(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetPublicPage loads a published wedding by slug and runs the render gate.
// Unpublished or missing slugs are both "not found" to the outside.
func (s *PageService) GetPublicPage(ctx context.Context, slug string) (*InvitationPage, error) {
	wedding, err := s.weddingRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, ErrWeddingNotFound
	}
	if !wedding.IsPublished {
		return nil, ErrWeddingNotFound
	}

	page := BuildPage(&wedding.User, wedding, s.now())
	if page.Status == PageReady {
		// Guestbook errors must not take down the page; render without.
		if messages, err := s.rsvpRepo.FindVisibleMessages(ctx, wedding.ID); err == nil {
			page.Messages = messages
		}
	}
	return &page, nil
}

var _ IPageService = (*PageService)(nil)
