package repositories

import (
	"context"
	"errors"
	"strings"

	"undangan.link/configs"
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRSVPRepository is the RSVP/guestbook access interface.
type IRSVPRepository interface {
	// Upsert finds the row for (weddingID, guest name) and updates it, or
	// creates it. Resubmitting an RSVP is an edit, not a duplicate.
	Upsert(ctx context.Context, rsvp *models.RSVP) error
	FindByWeddingAndGuest(ctx context.Context, weddingID uint, guestName string) (*models.RSVP, error)
	FindByWeddingID(ctx context.Context, weddingID uint) ([]models.RSVP, error)
	FindVisibleMessages(ctx context.Context, weddingID uint) ([]models.RSVP, error)
	CountAttendingGuests(ctx context.Context, weddingID uint) (int64, error)
	SetHidden(ctx context.Context, rsvpID uint, hidden bool) error
	Delete(ctx context.Context, rsvp *models.RSVP, deletedByUserID uint) error
}

// RSVPRepository implements IRSVPRepository on GORM.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository builds a repository on the shared connection.
func NewRSVPRepository() IRSVPRepository {
	return &RSVPRepository{db: configs.GetDB()}
}

// NewRSVPRepositoryTx builds a transaction-scoped repository.
func NewRSVPRepositoryTx(tx *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: tx}
}

func (r *RSVPRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

func (r *RSVPRepository) Upsert(ctx context.Context, rsvp *models.RSVP) error {
	if rsvp == nil || rsvp.WeddingID == 0 || strings.TrimSpace(rsvp.GuestName) == "" {
		return errors.New("an RSVP needs a wedding and a guest name")
	}
	db := r.getDB(ctx)
	return db.Where(models.RSVP{
		WeddingID: rsvp.WeddingID,
		GuestName: rsvp.GuestName,
	}).Assign(map[string]interface{}{
		"status":       rsvp.Status,
		"guest_count":  rsvp.GuestCount,
		"message":      rsvp.Message,
		"responded_at": rsvp.RespondedAt,
	}).FirstOrCreate(rsvp).Error
}

func (r *RSVPRepository) FindByWeddingAndGuest(ctx context.Context, weddingID uint, guestName string) (*models.RSVP, error) {
	if weddingID == 0 || guestName == "" {
		return nil, ErrNotFound
	}
	var rsvp models.RSVP
	err := r.getDB(ctx).Where("wedding_id = ? AND guest_name = ?", weddingID, guestName).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindByWeddingAndGuest: DB error", zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

func (r *RSVPRepository) FindByWeddingID(ctx context.Context, weddingID uint) ([]models.RSVP, error) {
	if weddingID == 0 {
		return nil, errors.New("invalid wedding ID")
	}
	var rsvps []models.RSVP
	err := r.getDB(ctx).Where("wedding_id = ?", weddingID).Order("created_at asc").Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindByWeddingID: DB error", zap.Uint("weddingID", weddingID), zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindVisibleMessages returns non-hidden entries with a message, newest
// first, for the public guestbook.
func (r *RSVPRepository) FindVisibleMessages(ctx context.Context, weddingID uint) ([]models.RSVP, error) {
	if weddingID == 0 {
		return nil, errors.New("invalid wedding ID")
	}
	var rsvps []models.RSVP
	err := r.getDB(ctx).
		Where("wedding_id = ? AND is_hidden = ? AND message <> ''", weddingID, false).
		Order("created_at desc").
		Find(&rsvps).Error
	return rsvps, err
}

// CountAttendingGuests sums the declared head counts of attending responses.
func (r *RSVPRepository) CountAttendingGuests(ctx context.Context, weddingID uint) (int64, error) {
	if weddingID == 0 {
		return 0, errors.New("invalid wedding ID")
	}
	var total int64
	err := r.getDB(ctx).Model(&models.RSVP{}).
		Where("wedding_id = ? AND status = ?", weddingID, models.RSVPStatusAttending).
		Select("COALESCE(SUM(guest_count), 0)").
		Scan(&total).Error
	return total, err
}

func (r *RSVPRepository) SetHidden(ctx context.Context, rsvpID uint, hidden bool) error {
	if rsvpID == 0 {
		return errors.New("invalid RSVP ID")
	}
	result := r.getDB(ctx).Model(&models.RSVP{}).Where("id = ?", rsvpID).Update("is_hidden", hidden)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RSVPRepository) Delete(ctx context.Context, rsvp *models.RSVP, deletedByUserID uint) error {
	if rsvp == nil || rsvp.ID == 0 {
		return errors.New("the RSVP to delete is not valid")
	}
	base := NewBaseRepository[models.RSVP](r.db)
	return base.Delete(ctx, rsvp, deletedByUserID)
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
