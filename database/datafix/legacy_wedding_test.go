package datafix

import (
	"testing"

	"undangan.link/models"
)

func legacyDocument() models.WeddingData {
	return models.WeddingData{
		Groom: models.CouplePerson{FullName: "Budi Santoso"},
		Bride: models.CouplePerson{FullName: "Siti Rahma"},
		Event: &models.WeddingEvent{
			Title:     "Pernikahan",
			Date:      "2025-09-14",
			StartTime: "08:00",
			EndTime:   "10:00",
			Venue:     "Masjid Agung",
			Address:   "Jl. Merdeka 1, Bandung",
		},
	}
}

func TestUpgradeDocument_SynthesizesTwoEvents(t *testing.T) {
	data := legacyDocument()

	if !UpgradeDocument(&data) {
		t.Fatal("legacy document must be reported as changed")
	}
	if len(data.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(data.Events))
	}

	akad := data.Events[0]
	if akad.Title != AkadTitle {
		t.Errorf("first event title = %q, want %q", akad.Title, AkadTitle)
	}
	if akad.StartTime != "08:00" || akad.EndTime != "10:00" {
		t.Errorf("akad must copy the legacy times, got %s-%s", akad.StartTime, akad.EndTime)
	}
	if akad.Venue != "Masjid Agung" || akad.Date != "2025-09-14" {
		t.Errorf("akad must copy venue and date, got %+v", akad)
	}

	reception := data.Events[1]
	if reception.Title != ReceptionTitle {
		t.Errorf("second event title = %q, want %q", reception.Title, ReceptionTitle)
	}
	if reception.StartTime != DefaultReceptionStart || reception.EndTime != DefaultReceptionEnd {
		t.Errorf("reception times = %s-%s, want %s-%s",
			reception.StartTime, reception.EndTime, DefaultReceptionStart, DefaultReceptionEnd)
	}
	if reception.Venue != "Masjid Agung" {
		t.Errorf("reception must inherit the venue, got %q", reception.Venue)
	}

	// The legacy field stays for older readers.
	if data.Event == nil {
		t.Error("legacy event field must not be cleared by the upgrade")
	}
}

func TestUpgradeDocument_BackfillsQuoteAndLoveStory(t *testing.T) {
	data := legacyDocument()
	UpgradeDocument(&data)

	if data.Quote == nil {
		t.Fatal("quote must be backfilled")
	}
	if data.Quote.Source != DefaultQuoteSource {
		t.Errorf("quote source = %q, want %q", data.Quote.Source, DefaultQuoteSource)
	}
	if data.LoveStory == nil {
		t.Fatal("love story must be backfilled")
	}
	if data.LoveStory.Enabled {
		t.Error("backfilled love story must be disabled")
	}
	if data.LoveStory.Chapters == nil || len(data.LoveStory.Chapters) != 0 {
		t.Errorf("backfilled love story chapters must be an empty slice, got %v", data.LoveStory.Chapters)
	}
}

func TestUpgradeDocument_Idempotent(t *testing.T) {
	data := legacyDocument()

	if !UpgradeDocument(&data) {
		t.Fatal("first pass must report a change")
	}
	if UpgradeDocument(&data) {
		t.Error("second pass must be a no-op")
	}
	if len(data.Events) != 2 {
		t.Errorf("second pass must not duplicate events, got %d", len(data.Events))
	}
}

func TestUpgradeDocument_ExistingEventsUntouched(t *testing.T) {
	data := legacyDocument()
	data.Events = []models.WeddingEvent{{Title: "Resepsi Keluarga", Date: "2025-09-15"}}
	data.Quote = &models.QuoteSection{Text: "custom"}
	data.LoveStory = &models.LoveStorySection{Enabled: true, Chapters: []models.LoveStoryChapter{{Title: "A", Story: "B"}}}

	if UpgradeDocument(&data) {
		t.Error("fully migrated document must report no change")
	}
	if len(data.Events) != 1 || data.Events[0].Title != "Resepsi Keluarga" {
		t.Errorf("existing events must be preserved, got %+v", data.Events)
	}
	if data.Quote.Text != "custom" {
		t.Error("existing quote must not be overwritten")
	}
}

func TestUpgradeDocument_NoLegacyEvent(t *testing.T) {
	data := models.WeddingData{
		Groom: models.CouplePerson{FullName: "A"},
		Bride: models.CouplePerson{FullName: "B"},
	}

	// Still dirty: quote and love story get backfilled.
	if !UpgradeDocument(&data) {
		t.Fatal("backfills alone must report a change")
	}
	if len(data.Events) != 0 {
		t.Errorf("no events may be invented without a legacy entry, got %d", len(data.Events))
	}
}

func TestUpgradeDocument_NilDocument(t *testing.T) {
	if UpgradeDocument(nil) {
		t.Error("nil document must be a no-op")
	}
}
