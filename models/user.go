package models

import "time"

// User is an account holder. IsSystem marks administrators; everyone else is
// a regular invitation owner. The plan column is evaluated lazily: expiry is
// checked against PlanExpiresAt at read time and the plan value itself is
// never mutated when it lapses.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsSystem     bool   `gorm:"default:false;index"`
	IsActive     bool   `gorm:"default:true;index"`

	Plan          Plan       `gorm:"type:varchar(20);not null;default:'FREE';index"`
	PlanExpiresAt *time.Time `gorm:"type:timestamptz;index"`
}

// PlanExpiredAt reports whether the plan's validity window has passed at the
// given instant. A nil expiry never expires.
func (u *User) PlanExpiredAt(now time.Time) bool {
	return u.PlanExpiresAt != nil && now.After(*u.PlanExpiresAt)
}

// EffectiveLimits resolves the user's capability record. Unknown plan values
// degrade to FREE inside LimitsFor.
func (u *User) EffectiveLimits() PlanLimits {
	return LimitsFor(u.Plan)
}
