// Package datafix upgrades stored wedding documents from historical shapes
// to the current schema. It runs as an offline batch from the database CLI;
// rerunning it after a clean pass performs zero writes.
package datafix

import (
	"fmt"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Defaults used when synthesizing the events array from the legacy singular
// event. The reception times are documented defaults, not a business rule.
const (
	AkadTitle             = "Akad Nikah"
	ReceptionTitle        = "Resepsi"
	DefaultReceptionStart = "11:00"
	DefaultReceptionEnd   = "13:00"
)

// Default quotation backfilled into documents that never set one.
const (
	DefaultQuoteText = "Dan di antara tanda-tanda kekuasaan-Nya ialah Dia menciptakan untukmu " +
		"pasangan hidup dari jenismu sendiri, supaya kamu cenderung dan merasa tenteram kepadanya, " +
		"dan dijadikan-Nya di antaramu rasa kasih dan sayang."
	DefaultQuoteSource = "QS Ar-Rum: 21"
)

// UpgradeDocument applies the legacy upgrades in place and reports whether
// anything changed. It is pure over the document and idempotent: a document
// it already upgraded comes back unchanged.
func UpgradeDocument(data *models.WeddingData) bool {
	if data == nil {
		return false
	}
	dirty := false

	// A singular event with no events array becomes the standard two-part
	// ceremony: the akad copies the legacy entry verbatim, the reception
	// copies it with the default time window. A document with neither field
	// simply never had an event filled in; that is not an error.
	if data.Event != nil && len(data.Events) == 0 {
		akad := *data.Event
		akad.Title = AkadTitle

		reception := *data.Event
		reception.Title = ReceptionTitle
		reception.StartTime = DefaultReceptionStart
		reception.EndTime = DefaultReceptionEnd

		data.Events = []models.WeddingEvent{akad, reception}
		dirty = true
	}

	if data.Quote == nil {
		data.Quote = &models.QuoteSection{Text: DefaultQuoteText, Source: DefaultQuoteSource}
		dirty = true
	}

	if data.LoveStory == nil {
		data.LoveStory = &models.LoveStorySection{Enabled: false, Chapters: []models.LoveStoryChapter{}}
		dirty = true
	}

	return dirty
}

// Result is the aggregate outcome of one batch run.
type Result struct {
	Scanned  int
	Migrated int
	Failed   int
}

// Run upgrades every stored wedding document. Each dirty row is written on
// its own, so a failure on row N never rolls back rows before it; failures
// are counted and reported as one aggregate error at the end.
func Run(db *gorm.DB) (Result, error) {
	var result Result

	var weddings []models.Wedding
	err := db.Model(&models.Wedding{}).FindInBatches(&weddings, 100, func(tx *gorm.DB, _ int) error {
		for i := range weddings {
			wedding := &weddings[i]
			result.Scanned++

			if !UpgradeDocument(&wedding.Data) {
				continue
			}
			updateErr := db.Model(&models.Wedding{}).
				Where("id = ?", wedding.ID).
				Update("data", wedding.Data).Error
			if updateErr != nil {
				result.Failed++
				configslog.Log.Error("Wedding document upgrade failed",
					zap.Uint("weddingID", wedding.ID), zap.Error(updateErr))
				continue
			}
			result.Migrated++
		}
		return nil
	}).Error
	if err != nil {
		return result, fmt.Errorf("wedding document scan aborted: %w", err)
	}

	configslog.SLog.Infof("Wedding document upgrade finished: %d scanned, %d migrated, %d failed",
		result.Scanned, result.Migrated, result.Failed)
	if result.Failed > 0 {
		return result, fmt.Errorf("%d wedding documents could not be upgraded", result.Failed)
	}
	return result, nil
}
