package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeddingDataToleratesUnknownKeys(t *testing.T) {
	raw := `{
		"groom": {"fullName": "Budi Santoso", "nickName": "Budi"},
		"bride": {"fullName": "Siti Rahma", "nickName": "Siti"},
		"someFutureSection": {"anything": true},
		"extra": {"hashtag": "#BudiSiti"}
	}`

	var data WeddingData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("document with unknown keys must still decode: %v", err)
	}
	if data.Groom.NickName != "Budi" || data.Bride.NickName != "Siti" {
		t.Errorf("couple names lost in decode: %+v / %+v", data.Groom, data.Bride)
	}
	if data.Extra["hashtag"] != "#BudiSiti" {
		t.Errorf("extra map lost: %v", data.Extra)
	}
}

func TestWeddingDataAbsentSectionsAreDisabled(t *testing.T) {
	var data WeddingData
	if err := json.Unmarshal([]byte(`{"groom":{"fullName":"A"},"bride":{"fullName":"B"}}`), &data); err != nil {
		t.Fatal(err)
	}

	if data.HasMusic() || data.HasVideo() || data.HasGifts() || data.HasLoveStory() || data.HasStreaming() {
		t.Error("absent sections must read as disabled")
	}
}

func TestHasLoveStory(t *testing.T) {
	chapter := LoveStoryChapter{Title: "Bertemu", Story: "2019"}

	cases := []struct {
		name string
		data *WeddingData
		want bool
	}{
		{"nil document", nil, false},
		{"nil section", &WeddingData{}, false},
		{"disabled with chapters", &WeddingData{LoveStory: &LoveStorySection{Enabled: false, Chapters: []LoveStoryChapter{chapter}}}, false},
		{"enabled without chapters", &WeddingData{LoveStory: &LoveStorySection{Enabled: true}}, false},
		{"enabled with chapters", &WeddingData{LoveStory: &LoveStorySection{Enabled: true, Chapters: []LoveStoryChapter{chapter}}}, true},
	}
	for _, tc := range cases {
		if got := tc.data.HasLoveStory(); got != tc.want {
			t.Errorf("%s: HasLoveStory() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRSVPOpenAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var noDeadline WeddingData
	if !noDeadline.RSVPOpenAt(now) {
		t.Error("document without a deadline must accept RSVPs")
	}

	future := now.Add(24 * time.Hour)
	open := WeddingData{RSVPDeadline: &future}
	if !open.RSVPOpenAt(now) {
		t.Error("RSVP must stay open before the deadline")
	}

	past := now.Add(-time.Minute)
	closed := WeddingData{RSVPDeadline: &past}
	if closed.RSVPOpenAt(now) {
		t.Error("RSVP must close after the deadline")
	}

	exact := WeddingData{RSVPDeadline: &now}
	if !exact.RSVPOpenAt(now) {
		t.Error("RSVP at the exact deadline instant must still be accepted")
	}
}
