package models

// TemplateCategory groups templates into the tiers plans may unlock.
type TemplateCategory string

const (
	TemplateCategoryBasic   TemplateCategory = "BASIC"
	TemplateCategoryPremium TemplateCategory = "PREMIUM"
	TemplateCategoryLuxury  TemplateCategory = "LUXURY"
)

// Template is a catalog entry for a visual presentation. The slug doubles as
// the key into the theme registry that resolves the actual view.
type Template struct {
	BaseModel
	Slug       string           `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name       string           `gorm:"type:varchar(100);not null"`
	Category   TemplateCategory `gorm:"type:varchar(20);not null;default:'BASIC';index"`
	PreviewURL string           `gorm:"type:varchar(500)"`
	IsActive   bool             `gorm:"default:true;index"`
}

// TemplateCategories returns the tiers in ascending order.
func TemplateCategories() []TemplateCategory {
	return []TemplateCategory{TemplateCategoryBasic, TemplateCategoryPremium, TemplateCategoryLuxury}
}

// Valid reports whether the category is one of the known tiers.
func (c TemplateCategory) Valid() bool {
	switch c {
	case TemplateCategoryBasic, TemplateCategoryPremium, TemplateCategoryLuxury:
		return true
	}
	return false
}
