package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// CtxUserIDKey carries the acting user's ID through a request context so the
// audit hooks below can stamp CreatedBy/UpdatedBy without every repository
// threading the value by hand.
const CtxUserIDKey contextKey = "user_id"

// ContextWithUserID returns ctx annotated with the acting user.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, CtxUserIDKey, userID)
}

// UserIDFromContext extracts the acting user's ID, if present.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(CtxUserIDKey).(uint)
	return id, ok && id != 0
}

// BaseModel is embedded by every persisted model: primary key, timestamps,
// soft delete and audit columns.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy *uint
	UpdatedBy *uint
	DeletedBy *uint
}

// BeforeCreate stamps the audit columns from the statement context.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.CreatedBy = &userID
		m.UpdatedBy = &userID
	}
	return nil
}

// BeforeUpdate stamps UpdatedBy from the statement context.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.UpdatedBy = &userID
	}
	return nil
}
