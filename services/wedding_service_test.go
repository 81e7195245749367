package services

import (
	"testing"

	"undangan.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgainstPlan_NilDocument(t *testing.T) {
	err := ValidateAgainstPlan(nil, models.LimitsFor(models.PlanFree))
	assert.ErrorIs(t, err, ErrWeddingInvalidInput)
}

func TestValidateAgainstPlan_GalleryOverLimit(t *testing.T) {
	data := &models.WeddingData{}
	for i := 0; i < 4; i++ {
		data.Gallery = append(data.Gallery, models.GalleryImage{URL: "https://cdn.example/p.jpg"})
	}

	err := ValidateAgainstPlan(data, models.LimitsFor(models.PlanFree))
	assert.ErrorIs(t, err, ErrGalleryLimitExceeded)

	assert.NoError(t, ValidateAgainstPlan(data, models.LimitsFor(models.PlanSilver)))
}

func TestValidateAgainstPlan_GatedSections(t *testing.T) {
	freeLimits := models.LimitsFor(models.PlanFree)
	silverLimits := models.LimitsFor(models.PlanSilver)
	goldLimits := models.LimitsFor(models.PlanGold)

	withMusic := &models.WeddingData{Music: &models.MusicSection{URL: "https://cdn.example/song.mp3"}}
	assert.ErrorIs(t, ValidateAgainstPlan(withMusic, freeLimits), ErrFeatureNotInPlan)
	assert.NoError(t, ValidateAgainstPlan(withMusic, silverLimits))

	withLoveStory := &models.WeddingData{LoveStory: &models.LoveStorySection{
		Enabled:  true,
		Chapters: []models.LoveStoryChapter{{Title: "Bertemu", Story: "2019"}},
	}}
	assert.ErrorIs(t, ValidateAgainstPlan(withLoveStory, silverLimits), ErrFeatureNotInPlan)
	assert.NoError(t, ValidateAgainstPlan(withLoveStory, goldLimits))
}

func TestValidateAgainstPlan_DisabledLoveStoryIsNotGated(t *testing.T) {
	// The datafix backfills {enabled:false}; saving that on FREE must pass.
	data := &models.WeddingData{LoveStory: &models.LoveStorySection{Enabled: false, Chapters: []models.LoveStoryChapter{}}}
	require.NoError(t, ValidateAgainstPlan(data, models.LimitsFor(models.PlanFree)))
}

func TestValidateAgainstPlan_EmptyDocumentPassesEveryPlan(t *testing.T) {
	data := &models.WeddingData{
		Groom: models.CouplePerson{FullName: "Budi Santoso"},
		Bride: models.CouplePerson{FullName: "Siti Rahma"},
	}
	for _, plan := range models.Plans() {
		assert.NoError(t, ValidateAgainstPlan(data, models.LimitsFor(plan)), "plan %s", plan)
	}
}
