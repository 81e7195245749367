package models

import (
	"crypto/rand"
	"errors"
	"math/big"

	"gorm.io/gorm"
)

const (
	slugLength  = 11
	slugCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Wedding binds a user to their invitation document, the selected template
// and the public slug the invitation is published under. One row per user.
type Wedding struct {
	BaseModel
	UserID      uint        `gorm:"uniqueIndex;not null"`
	Slug        string      `gorm:"type:varchar(11);uniqueIndex;not null"`
	TemplateID  *uint       `gorm:"index"`
	IsPublished bool        `gorm:"default:false;index"`
	Data        WeddingData `gorm:"serializer:json;type:jsonb"`

	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Template *Template `gorm:"foreignKey:TemplateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	RSVPs    []RSVP    `gorm:"foreignKey:WeddingID"`
}

// BeforeCreate generates the public slug. Collisions are retried a few times;
// the unique index is the final guard.
func (w *Wedding) BeforeCreate(tx *gorm.DB) error {
	if err := w.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if w.Slug != "" {
		return nil
	}
	for attempt := 0; attempt < 5; attempt++ {
		slug, err := randomSlug(slugLength)
		if err != nil {
			return err
		}
		var count int64
		if err := tx.Model(&Wedding{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			w.Slug = slug
			return nil
		}
	}
	return errors.New("a unique invitation slug could not be generated")
}

func randomSlug(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(slugCharset)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = slugCharset[idx.Int64()]
	}
	return string(out), nil
}
