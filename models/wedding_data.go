package models

import "time"

// WeddingData is the invitation content document, stored as a single jsonb
// column per wedding. Every optional section is a pointer: absence means the
// feature is disabled, never an error. Readers must tolerate documents
// written by older releases, so nothing here may assume a key is present.
type WeddingData struct {
	Groom CouplePerson `json:"groom"`
	Bride CouplePerson `json:"bride"`

	// Event is the deprecated singular field kept for backward reads.
	// New documents carry Events; the datafix batch upgrades old ones.
	Event  *WeddingEvent  `json:"event,omitempty"`
	Events []WeddingEvent `json:"events,omitempty"`

	Gallery []GalleryImage `json:"gallery,omitempty"`

	Video          *VideoSection          `json:"video,omitempty"`
	Music          *MusicSection          `json:"music,omitempty"`
	Quote          *QuoteSection          `json:"quote,omitempty"`
	LoveStory      *LoveStorySection      `json:"loveStory,omitempty"`
	Gifts          *GiftSection           `json:"gifts,omitempty"`
	Streaming      *StreamingSection      `json:"streaming,omitempty"`
	Protocol       *ProtocolSection       `json:"protocol,omitempty"`
	ExtendedFamily *ExtendedFamilySection `json:"extendedFamily,omitempty"`

	RSVPDeadline *time.Time `json:"rsvpDeadline,omitempty"`

	// Extra carries forward-compatible key-value pairs the editor may add
	// before the schema knows about them.
	Extra map[string]string `json:"extra,omitempty"`
}

// CouplePerson describes one half of the couple.
type CouplePerson struct {
	FullName   string `json:"fullName"`
	NickName   string `json:"nickName,omitempty"`
	FatherName string `json:"fatherName,omitempty"`
	MotherName string `json:"motherName,omitempty"`
	PhotoURL   string `json:"photo,omitempty"`
	Instagram  string `json:"instagram,omitempty"`
}

// WeddingEvent is one ceremony or reception entry.
type WeddingEvent struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Address   string `json:"address,omitempty"`
	MapsURL   string `json:"mapsUrl,omitempty"`
}

// GalleryImage is one uploaded photo reference.
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type VideoSection struct {
	URL string `json:"url"`
}

type MusicSection struct {
	URL      string `json:"url"`
	Title    string `json:"title,omitempty"`
	Autoplay bool   `json:"autoplay,omitempty"`
}

type QuoteSection struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

type LoveStorySection struct {
	Enabled  bool               `json:"enabled"`
	Chapters []LoveStoryChapter `json:"chapters"`
}

type LoveStoryChapter struct {
	Title string `json:"title"`
	Date  string `json:"date,omitempty"`
	Story string `json:"story"`
}

type GiftSection struct {
	Accounts        []BankAccount `json:"accounts,omitempty"`
	ShippingAddress string        `json:"shippingAddress,omitempty"`
}

type BankAccount struct {
	Bank   string `json:"bank"`
	Number string `json:"number"`
	Holder string `json:"holder"`
}

type StreamingSection struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	StartAt  string `json:"startAt,omitempty"`
}

type ProtocolSection struct {
	Items []string `json:"items"`
}

type ExtendedFamilySection struct {
	Entries []FamilyEntry `json:"entries"`
}

type FamilyEntry struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
}

// HasLoveStory reports whether the section exists, is switched on and has
// content. Nil-safe like every accessor below.
func (d *WeddingData) HasLoveStory() bool {
	return d != nil && d.LoveStory != nil && d.LoveStory.Enabled && len(d.LoveStory.Chapters) > 0
}

func (d *WeddingData) HasMusic() bool {
	return d != nil && d.Music != nil && d.Music.URL != ""
}

func (d *WeddingData) HasVideo() bool {
	return d != nil && d.Video != nil && d.Video.URL != ""
}

func (d *WeddingData) HasGifts() bool {
	return d != nil && d.Gifts != nil && (len(d.Gifts.Accounts) > 0 || d.Gifts.ShippingAddress != "")
}

func (d *WeddingData) HasStreaming() bool {
	return d != nil && d.Streaming != nil && d.Streaming.URL != ""
}

// RSVPOpenAt reports whether RSVPs are still accepted at the given instant.
// A document without a deadline accepts RSVPs indefinitely.
func (d *WeddingData) RSVPOpenAt(now time.Time) bool {
	if d == nil || d.RSVPDeadline == nil {
		return true
	}
	return !now.After(*d.RSVPDeadline)
}
