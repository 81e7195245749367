package models

// Plan is a subscription tier. Stored as a plain string on the user row so
// unknown historical values load without error and degrade to FREE limits.
type Plan string

const (
	PlanFree   Plan = "FREE"
	PlanSilver Plan = "SILVER"
	PlanGold   Plan = "GOLD"
)

// Feature names a plan-gated capability. Gate checks go through typed
// constants only; there is no lookup by arbitrary string.
type Feature string

const (
	FeatureMusic           Feature = "music"
	FeatureVideo           Feature = "video"
	FeatureGifts           Feature = "gifts"
	FeatureLoveStory       Feature = "love_story"
	FeatureStreaming       Feature = "streaming"
	FeatureRemoveWatermark Feature = "remove_watermark"
)

// Unlimited marks a numeric ceiling as unbounded. Comparisons must go through
// the Allows* helpers instead of reading the raw field.
const Unlimited = -1

// PlanLimits is the complete capability record of one tier.
type PlanLimits struct {
	PriceIDR         int64
	MaxGuests        int
	MaxGalleryPhotos int
	CanUseMusic      bool
	CanUseVideo      bool
	CanUseGifts      bool
	CanUseLoveStory  bool
	CanUseStreaming  bool
	RemoveWatermark  bool
	// ValidityDays is the plan's validity window after purchase; nil means
	// the plan never expires.
	ValidityDays      *int
	AllowedCategories []TemplateCategory
}

func days(n int) *int { return &n }

// planLimits is the authoritative catalog. Read-only after init; LimitsFor
// hands out copies, never map references.
var planLimits = map[Plan]PlanLimits{
	PlanFree: {
		PriceIDR:          0,
		MaxGuests:         50,
		MaxGalleryPhotos:  3,
		ValidityDays:      days(30),
		AllowedCategories: []TemplateCategory{TemplateCategoryBasic},
	},
	PlanSilver: {
		PriceIDR:          99000,
		MaxGuests:         300,
		MaxGalleryPhotos:  10,
		CanUseMusic:       true,
		CanUseGifts:       true,
		ValidityDays:      days(180),
		AllowedCategories: []TemplateCategory{TemplateCategoryBasic, TemplateCategoryPremium},
	},
	PlanGold: {
		PriceIDR:          199000,
		MaxGuests:         Unlimited,
		MaxGalleryPhotos:  Unlimited,
		CanUseMusic:       true,
		CanUseVideo:       true,
		CanUseGifts:       true,
		CanUseLoveStory:   true,
		CanUseStreaming:   true,
		RemoveWatermark:   true,
		ValidityDays:      nil,
		AllowedCategories: []TemplateCategory{TemplateCategoryBasic, TemplateCategoryPremium, TemplateCategoryLuxury},
	},
}

// LimitsFor returns the capability record for a plan. Unknown values fall
// back to FREE so a corrupted plan column can never widen access.
func LimitsFor(plan Plan) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

// IsEnabled reports whether the named capability is available on the plan.
func IsEnabled(plan Plan, feature Feature) bool {
	return LimitsFor(plan).FeatureEnabled(feature)
}

// FeatureEnabled resolves a typed feature to its boolean on the record.
func (l PlanLimits) FeatureEnabled(feature Feature) bool {
	switch feature {
	case FeatureMusic:
		return l.CanUseMusic
	case FeatureVideo:
		return l.CanUseVideo
	case FeatureGifts:
		return l.CanUseGifts
	case FeatureLoveStory:
		return l.CanUseLoveStory
	case FeatureStreaming:
		return l.CanUseStreaming
	case FeatureRemoveWatermark:
		return l.RemoveWatermark
	}
	return false
}

// AllowsGuests reports whether n attending guests fit under the ceiling.
func (l PlanLimits) AllowsGuests(n int) bool {
	return l.MaxGuests == Unlimited || n <= l.MaxGuests
}

// AllowsGalleryCount reports whether a gallery of n photos fits.
func (l PlanLimits) AllowsGalleryCount(n int) bool {
	return l.MaxGalleryPhotos == Unlimited || n <= l.MaxGalleryPhotos
}

// GalleryCeiling returns how many photos of n may be shown. Used by the
// renderer to truncate rather than reject.
func (l PlanLimits) GalleryCeiling(n int) int {
	if l.MaxGalleryPhotos == Unlimited || n <= l.MaxGalleryPhotos {
		return n
	}
	return l.MaxGalleryPhotos
}

// AllowsTemplateCategory reports whether the plan may use templates of the
// given category.
func (l PlanLimits) AllowsTemplateCategory(category TemplateCategory) bool {
	for _, c := range l.AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Plans lists the known tiers in ascending order. Used by the pricing page
// and the checkout flow.
func Plans() []Plan {
	return []Plan{PlanFree, PlanSilver, PlanGold}
}

// Valid reports whether p is a known tier.
func (p Plan) Valid() bool {
	_, ok := planLimits[p]
	return ok
}
