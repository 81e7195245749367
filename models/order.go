package models

import "time"

// OrderStatus is the payment lifecycle of a plan purchase.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
	OrderStatusExpired OrderStatus = "expired"
)

// Order records one plan purchase attempt against the payment gateway.
// Ref is our identifier handed to the gateway as the client reference;
// ProviderRef is the gateway's session identifier coming back on the webhook.
type Order struct {
	BaseModel
	UserID uint   `gorm:"not null;index"`
	Ref    string `gorm:"type:varchar(36);uniqueIndex;not null"`

	Plan      Plan        `gorm:"type:varchar(20);not null"`
	AmountIDR int64       `gorm:"not null"`
	Currency  string      `gorm:"type:varchar(10);not null;default:'IDR'"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	Provider    string     `gorm:"type:varchar(20);not null;default:'stripe'"`
	ProviderRef string     `gorm:"type:varchar(191);index"`
	PaidAt      *time.Time `gorm:"type:timestamptz"`

	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
