package models

import "time"

// RSVPStatus enumerates the possible attendance answers.
type RSVPStatus string

const (
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
	RSVPStatusMaybe        RSVPStatus = "maybe"
)

// ValidRSVPStatus reports whether s is one of the known answers.
func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case RSVPStatusAttending, RSVPStatusNotAttending, RSVPStatusMaybe:
		return true
	}
	return false
}

// RSVP is a guest's response to a public invitation, doubling as the
// guestbook entry when Message is set. One row per (wedding, guest name);
// resubmitting updates the existing row.
type RSVP struct {
	BaseModel
	WeddingID uint   `gorm:"not null;index:idx_rsvp_wedding_guest,unique"`
	GuestName string `gorm:"type:varchar(150);not null;index:idx_rsvp_wedding_guest,unique"`

	Status     RSVPStatus `gorm:"type:varchar(20);not null;index"`
	GuestCount int        `gorm:"type:integer;not null;default:1"`
	Message    string     `gorm:"type:text"`
	// IsHidden is set by moderation; hidden messages stay stored but are
	// not rendered on the public page.
	IsHidden    bool       `gorm:"default:false;index"`
	RespondedAt *time.Time `gorm:"type:timestamptz"`
}
