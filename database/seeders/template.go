package seeders

import (
	"context"
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"
	"undangan.link/pkg/themes"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// templateCategories assigns the built-in themes to catalog tiers. A theme
// missing here ends up in the BASIC tier.
var templateCategories = map[string]models.TemplateCategory{
	"classic-rose":    models.TemplateCategoryBasic,
	"rustic-wood":     models.TemplateCategoryBasic,
	"minimal-ivory":   models.TemplateCategoryPremium,
	"golden-ornament": models.TemplateCategoryPremium,
	"royal-batik":     models.TemplateCategoryLuxury,
}

// SeedTemplates inserts a catalog row for every registered theme that does
// not have one yet. Existing rows are never touched.
func SeedTemplates(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := models.ContextWithUserID(context.Background(), systemUserID)

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Template catalog seeding starting...")

	for _, theme := range themes.All() {
		var existing models.Template
		result := db.Where("slug = ?", theme.Slug).First(&existing)
		if result.Error == nil {
			configslog.SLog.Debugf("Template '%s' already exists, skipping.", theme.Slug)
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Template lookup failed during seeding",
				zap.String("slug", theme.Slug), zap.Error(result.Error))
			errorOccurred = true
			continue
		}

		category, ok := templateCategories[theme.Slug]
		if !ok {
			category = models.TemplateCategoryBasic
		}
		template := models.Template{
			Slug:     theme.Slug,
			Name:     theme.Name,
			Category: category,
			IsActive: true,
		}
		if err := db.WithContext(ctx).Create(&template).Error; err != nil {
			configslog.Log.Error("Template could not be seeded",
				zap.String("slug", theme.Slug), zap.Error(err))
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Template '%s' seeded (ID %d).", theme.Slug, template.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d new templates seeded.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("All templates already present, nothing to seed.")
	}
	if errorOccurred {
		return errors.New("at least one template failed to seed")
	}
	return nil
}
