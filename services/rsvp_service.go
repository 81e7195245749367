package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/repositories"

	"go.uber.org/zap"
)

// RSVPServiceError is the typed error set of this service.
type RSVPServiceError string

func (e RSVPServiceError) Error() string { return string(e) }

const (
	ErrRSVPInvalidInput   RSVPServiceError = "invalid RSVP data"
	ErrRSVPDeadlinePassed RSVPServiceError = "the RSVP deadline has passed"
	ErrRSVPNotOpen        RSVPServiceError = "this invitation does not accept RSVPs"
	ErrGuestLimitReached  RSVPServiceError = "the guest limit for this invitation has been reached"
	ErrRSVPNotFound       RSVPServiceError = "RSVP not found"
)

// RSVPSubmission is the public form payload.
type RSVPSubmission struct {
	GuestName  string            `form:"guest_name" validate:"required,min=2,max=150"`
	Status     models.RSVPStatus `form:"status" validate:"required"`
	GuestCount int               `form:"guest_count" validate:"min=1,max=10"`
	Message    string            `form:"message" validate:"max=1000"`
}

// IRSVPService handles guest responses and their moderation.
type IRSVPService interface {
	Submit(ctx context.Context, slug string, submission RSVPSubmission) error
	GetForOwner(ctx context.Context, userID uint) ([]models.RSVP, error)
	CountAttending(ctx context.Context, weddingID uint) (int64, error)
	SetMessageHidden(ctx context.Context, adminUserID uint, rsvpID uint, hidden bool) error
}

// RSVPService implements IRSVPService.
type RSVPService struct {
	repo        repositories.IRSVPRepository
	weddingRepo repositories.IWeddingRepository
	now         func() time.Time
}

// NewRSVPService builds the service with its default dependencies.
func NewRSVPService() IRSVPService {
	return &RSVPService{
		repo:        repositories.NewRSVPRepository(),
		weddingRepo: repositories.NewWeddingRepository(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ValidateSubmission normalises and checks the form payload.
func ValidateSubmission(submission *RSVPSubmission) error {
	submission.GuestName = strings.TrimSpace(submission.GuestName)
	submission.Message = strings.TrimSpace(submission.Message)
	if submission.GuestCount == 0 {
		submission.GuestCount = 1
	}
	if !models.ValidRSVPStatus(submission.Status) {
		return fmt.Errorf("%w: unknown status %q", ErrRSVPInvalidInput, submission.Status)
	}
	if err := validate.Struct(submission); err != nil {
		return fmt.Errorf("%w: %v", ErrRSVPInvalidInput, err)
	}
	return nil
}

// Submit records a guest's response against a published invitation.
// The plan's guest ceiling counts attending heads across all responses;
// resubmissions replace the guest's previous head count before the check.
func (s *RSVPService) Submit(ctx context.Context, slug string, submission RSVPSubmission) error {
	if err := ValidateSubmission(&submission); err != nil {
		return err
	}

	wedding, err := s.weddingRepo.FindBySlug(ctx, slug)
	if err != nil || !wedding.IsPublished {
		return ErrRSVPNotOpen
	}

	now := s.now()
	if wedding.User.PlanExpiredAt(now) {
		return ErrRSVPNotOpen
	}
	if !wedding.Data.RSVPOpenAt(now) {
		return ErrRSVPDeadlinePassed
	}

	if submission.Status == models.RSVPStatusAttending {
		attending, err := s.repo.CountAttendingGuests(ctx, wedding.ID)
		if err != nil {
			return err
		}
		if previous, err := s.repo.FindByWeddingAndGuest(ctx, wedding.ID, submission.GuestName); err == nil {
			if previous.Status == models.RSVPStatusAttending {
				attending -= int64(previous.GuestCount)
			}
		} else if !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		limits := wedding.User.EffectiveLimits()
		if !limits.AllowsGuests(int(attending) + submission.GuestCount) {
			return ErrGuestLimitReached
		}
	}

	rsvp := &models.RSVP{
		WeddingID:   wedding.ID,
		GuestName:   submission.GuestName,
		Status:      submission.Status,
		GuestCount:  submission.GuestCount,
		Message:     submission.Message,
		RespondedAt: &now,
	}
	if err := s.repo.Upsert(ctx, rsvp); err != nil {
		configslog.Log.Error("RSVP submit failed", zap.String("slug", slug), zap.Error(err))
		return RSVPServiceError("RSVP could not be saved")
	}
	configslog.SLog.Infof("RSVP recorded: wedding %d, guest %q, status %s", wedding.ID, submission.GuestName, submission.Status)
	return nil
}

func (s *RSVPService) GetForOwner(ctx context.Context, userID uint) ([]models.RSVP, error) {
	wedding, err := s.weddingRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.RSVP{}, nil
		}
		return nil, err
	}
	return s.repo.FindByWeddingID(ctx, wedding.ID)
}

func (s *RSVPService) CountAttending(ctx context.Context, weddingID uint) (int64, error) {
	return s.repo.CountAttendingGuests(ctx, weddingID)
}

// SetMessageHidden is the moderation switch for guestbook entries.
func (s *RSVPService) SetMessageHidden(ctx context.Context, adminUserID uint, rsvpID uint, hidden bool) error {
	ctxAdmin := models.ContextWithUserID(ctx, adminUserID)
	if err := s.repo.SetHidden(ctxAdmin, rsvpID, hidden); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRSVPNotFound
		}
		return err
	}
	configslog.SLog.Infof("Guestbook moderation: RSVP %d hidden=%t (admin %d)", rsvpID, hidden, adminUserID)
	return nil
}

var _ IRSVPService = (*RSVPService)(nil)
