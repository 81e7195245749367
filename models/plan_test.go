package models

import "testing"

func TestLimitsFor_FreeTier(t *testing.T) {
	limits := LimitsFor(PlanFree)

	if limits.PriceIDR != 0 {
		t.Errorf("Free PriceIDR = %d, want 0", limits.PriceIDR)
	}
	if limits.MaxGuests != 50 {
		t.Errorf("Free MaxGuests = %d, want 50", limits.MaxGuests)
	}
	if limits.MaxGalleryPhotos != 3 {
		t.Errorf("Free MaxGalleryPhotos = %d, want 3", limits.MaxGalleryPhotos)
	}
	if limits.CanUseMusic || limits.CanUseVideo || limits.CanUseGifts || limits.CanUseLoveStory ||
		limits.CanUseStreaming || limits.RemoveWatermark {
		t.Error("Free tier must not enable any gated feature")
	}
	if limits.ValidityDays == nil || *limits.ValidityDays != 30 {
		t.Errorf("Free ValidityDays = %v, want 30", limits.ValidityDays)
	}
}

func TestLimitsFor_SilverTier(t *testing.T) {
	limits := LimitsFor(PlanSilver)

	if limits.MaxGuests != 300 {
		t.Errorf("Silver MaxGuests = %d, want 300", limits.MaxGuests)
	}
	if limits.MaxGalleryPhotos != 10 {
		t.Errorf("Silver MaxGalleryPhotos = %d, want 10", limits.MaxGalleryPhotos)
	}
	if !limits.CanUseMusic || !limits.CanUseGifts {
		t.Error("Silver must enable music and gifts")
	}
	if limits.CanUseLoveStory {
		t.Error("Silver must not enable the love story section")
	}
	if limits.CanUseVideo || limits.CanUseStreaming || limits.RemoveWatermark {
		t.Error("Silver must not enable video, streaming or watermark removal")
	}
	if limits.ValidityDays == nil || *limits.ValidityDays != 180 {
		t.Errorf("Silver ValidityDays = %v, want 180", limits.ValidityDays)
	}
}

func TestLimitsFor_GoldTier(t *testing.T) {
	limits := LimitsFor(PlanGold)

	if limits.MaxGuests != Unlimited || limits.MaxGalleryPhotos != Unlimited {
		t.Error("Gold guest and gallery ceilings must be unlimited")
	}
	for _, feature := range []Feature{FeatureMusic, FeatureVideo, FeatureGifts, FeatureLoveStory, FeatureStreaming, FeatureRemoveWatermark} {
		if !limits.FeatureEnabled(feature) {
			t.Errorf("Gold must enable %q", feature)
		}
	}
	if limits.ValidityDays != nil {
		t.Errorf("Gold ValidityDays = %v, want nil", limits.ValidityDays)
	}
}

func TestLimitsFor_UnknownPlanFallsBackToFree(t *testing.T) {
	unknown := LimitsFor(Plan("PLATINUM"))
	free := LimitsFor(PlanFree)

	if unknown.MaxGuests != free.MaxGuests || unknown.MaxGalleryPhotos != free.MaxGalleryPhotos {
		t.Errorf("unknown plan limits = %+v, want free limits %+v", unknown, free)
	}
	for _, feature := range []Feature{FeatureMusic, FeatureVideo, FeatureGifts, FeatureLoveStory, FeatureStreaming, FeatureRemoveWatermark} {
		if unknown.FeatureEnabled(feature) {
			t.Errorf("unknown plan must not enable %q", feature)
		}
	}
}

func TestIsEnabled_UnknownFeatureIsDisabled(t *testing.T) {
	for _, plan := range Plans() {
		if IsEnabled(plan, Feature("teleportation")) {
			t.Errorf("plan %q reports an unknown feature as enabled", plan)
		}
	}
}

func TestAllowsGuests(t *testing.T) {
	silver := LimitsFor(PlanSilver)
	if !silver.AllowsGuests(300) {
		t.Error("Silver must allow exactly 300 guests")
	}
	if silver.AllowsGuests(301) {
		t.Error("Silver must reject 301 guests")
	}

	gold := LimitsFor(PlanGold)
	if !gold.AllowsGuests(100000) {
		t.Error("Gold must allow any guest count")
	}
}

func TestGalleryCeiling(t *testing.T) {
	free := LimitsFor(PlanFree)
	if got := free.GalleryCeiling(2); got != 2 {
		t.Errorf("GalleryCeiling(2) = %d, want 2", got)
	}
	if got := free.GalleryCeiling(7); got != 3 {
		t.Errorf("GalleryCeiling(7) = %d, want 3", got)
	}

	gold := LimitsFor(PlanGold)
	if got := gold.GalleryCeiling(500); got != 500 {
		t.Errorf("Gold GalleryCeiling(500) = %d, want 500", got)
	}
}

func TestAllowsTemplateCategory(t *testing.T) {
	cases := []struct {
		plan     Plan
		category TemplateCategory
		want     bool
	}{
		{PlanFree, TemplateCategoryBasic, true},
		{PlanFree, TemplateCategoryPremium, false},
		{PlanFree, TemplateCategoryLuxury, false},
		{PlanSilver, TemplateCategoryPremium, true},
		{PlanSilver, TemplateCategoryLuxury, false},
		{PlanGold, TemplateCategoryLuxury, true},
	}
	for _, tc := range cases {
		if got := LimitsFor(tc.plan).AllowsTemplateCategory(tc.category); got != tc.want {
			t.Errorf("%s/%s = %v, want %v", tc.plan, tc.category, got, tc.want)
		}
	}
}

func TestPlanValid(t *testing.T) {
	for _, plan := range Plans() {
		if !plan.Valid() {
			t.Errorf("plan %q should be valid", plan)
		}
	}
	if Plan("PLATINUM").Valid() {
		t.Error("unknown plan should not be valid")
	}
}
