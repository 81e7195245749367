package services

import (
	"testing"
	"time"

	"undangan.link/models"
	"undangan.link/pkg/themes"
)

var pageNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func templateID(id uint) *uint { return &id }

func readyWedding(plan models.Plan) (*models.User, *models.Wedding) {
	owner := &models.User{Plan: plan}
	wedding := &models.Wedding{
		Slug:        "abc123def45",
		IsPublished: true,
		TemplateID:  templateID(1),
		Template:    &models.Template{Slug: "classic-rose", Category: models.TemplateCategoryBasic},
		Data: models.WeddingData{
			Groom: models.CouplePerson{FullName: "Budi Santoso", NickName: "Budi"},
			Bride: models.CouplePerson{FullName: "Siti Rahma", NickName: "Siti"},
			Events: []models.WeddingEvent{
				{Title: "Akad Nikah", Date: "2025-09-14"},
				{Title: "Resepsi", Date: "2025-09-14"},
			},
		},
	}
	return owner, wedding
}

func TestBuildPage_ExpiredPlanWinsOverEverything(t *testing.T) {
	owner, wedding := readyWedding(models.PlanFree)
	expired := pageNow.Add(-time.Hour)
	owner.PlanExpiresAt = &expired
	// Even a wedding with no template must report expired, not preparing.
	wedding.TemplateID = nil
	wedding.Template = nil

	page := BuildPage(owner, wedding, pageNow)
	if page.Status != PageExpired {
		t.Errorf("status = %q, want %q", page.Status, PageExpired)
	}
	if page.Data != nil {
		t.Error("expired page must not expose the document")
	}
}

func TestBuildPage_NoTemplateIsPreparing(t *testing.T) {
	owner, wedding := readyWedding(models.PlanFree)
	wedding.TemplateID = nil
	wedding.Template = nil

	page := BuildPage(owner, wedding, pageNow)
	if page.Status != PagePreparing {
		t.Errorf("status = %q, want %q", page.Status, PagePreparing)
	}
}

func TestBuildPage_Ready(t *testing.T) {
	owner, wedding := readyWedding(models.PlanFree)

	page := BuildPage(owner, wedding, pageNow)
	if page.Status != PageReady {
		t.Fatalf("status = %q, want %q", page.Status, PageReady)
	}
	if page.Theme.Slug != "classic-rose" {
		t.Errorf("theme = %q, want classic-rose", page.Theme.Slug)
	}
	if !page.RSVPOpen {
		t.Error("page without a deadline must accept RSVPs")
	}
}

func TestBuildPage_UnregisteredTemplateSlugFallsBackToPlaceholder(t *testing.T) {
	owner, wedding := readyWedding(models.PlanGold)
	wedding.Template.Slug = "deleted-theme"

	page := BuildPage(owner, wedding, pageNow)
	if page.Status != PageReady {
		t.Fatalf("status = %q, want %q", page.Status, PageReady)
	}
	if page.Theme != themes.NotFoundTheme {
		t.Errorf("theme = %+v, want the placeholder", page.Theme)
	}
}

func TestBuildPage_SilverSuppressesLoveStory(t *testing.T) {
	owner, wedding := readyWedding(models.PlanSilver)
	wedding.Data.LoveStory = &models.LoveStorySection{
		Enabled:  true,
		Chapters: []models.LoveStoryChapter{{Title: "Bertemu", Story: "2019"}},
	}
	wedding.Data.Music = &models.MusicSection{URL: "https://cdn.example/song.mp3"}

	page := BuildPage(owner, wedding, pageNow)
	if page.Status != PageReady {
		t.Fatalf("status = %q, want %q", page.Status, PageReady)
	}
	if page.Sections.ShowLoveStory {
		t.Error("silver plan must suppress the love story section even when the document carries one")
	}
	if !page.Sections.ShowMusic {
		t.Error("silver plan must show the music section")
	}
	if !page.Sections.ShowWatermark {
		t.Error("silver plan must keep the watermark")
	}
}

func TestBuildPage_GoldShowsEverythingCarried(t *testing.T) {
	owner, wedding := readyWedding(models.PlanGold)
	wedding.Data.LoveStory = &models.LoveStorySection{
		Enabled:  true,
		Chapters: []models.LoveStoryChapter{{Title: "Bertemu", Story: "2019"}},
	}
	wedding.Data.Streaming = &models.StreamingSection{Platform: "YouTube", URL: "https://youtu.be/x"}
	wedding.Data.Video = &models.VideoSection{URL: "https://youtu.be/y"}

	page := BuildPage(owner, wedding, pageNow)
	if !page.Sections.ShowLoveStory || !page.Sections.ShowStreaming || !page.Sections.ShowVideo {
		t.Errorf("gold plan must show carried sections, got %+v", page.Sections)
	}
	if page.Sections.ShowWatermark {
		t.Error("gold plan must remove the watermark")
	}
	if page.Sections.ShowGifts {
		t.Error("a section the document does not carry must stay hidden")
	}
}

func TestBuildPage_GalleryTruncatedToPlanCeiling(t *testing.T) {
	owner, wedding := readyWedding(models.PlanFree)
	for i := 0; i < 7; i++ {
		wedding.Data.Gallery = append(wedding.Data.Gallery, models.GalleryImage{URL: "https://cdn.example/p.jpg"})
	}

	page := BuildPage(owner, wedding, pageNow)
	if len(page.Sections.Gallery) != 3 {
		t.Errorf("free gallery = %d photos, want 3", len(page.Sections.Gallery))
	}
}

func TestBuildPage_RSVPClosedAfterDeadline(t *testing.T) {
	owner, wedding := readyWedding(models.PlanFree)
	deadline := pageNow.Add(-time.Hour)
	wedding.Data.RSVPDeadline = &deadline

	page := BuildPage(owner, wedding, pageNow)
	if page.RSVPOpen {
		t.Error("page past the deadline must not accept RSVPs")
	}
}
