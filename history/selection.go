package history

import (
	"fmt"
	"time"

	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/stream"
)

// SavedSelection is the last stream chosen for a catalogue.
type SavedSelection struct {
	CatalogueID string    `json:"catalogue_id"`
	Title       string    `json:"title"`
	Origin      string    `json:"origin"`
	VideoURL    string    `json:"video_url"`
	AudioURL    string    `json:"audio_url,omitempty"`
	Quality     string    `json:"quality"`
	Resolution  string    `json:"resolution"`
	Language    string    `json:"language,omitempty"`
	Tier        string    `json:"tier"`
	MaxQuality  string    `json:"max_quality,omitempty"`
	SelectedAt  time.Time `json:"selected_at"`
}

func (s *SavedSelection) encode() string {
	return fmt.Sprintf("%s (%s)", s.CatalogueID, s.Origin)
}

func (s *SavedSelection) String() string {
	title := s.Title
	if title == "" {
		title = s.CatalogueID
	}
	return fmt.Sprintf("%s : %s %s", title, s.Quality, s.Resolution)
}

func newSavedSelection(c *source.Catalogue, result stream.Result, maxQuality string) *SavedSelection {
	return &SavedSelection{
		CatalogueID: c.ID,
		Title:       c.Title,
		Origin:      c.Origin,
		VideoURL:    result.VideoURL,
		AudioURL:    result.AudioURL.OrEmpty(),
		Quality:     result.QualityLabel,
		Resolution:  result.Resolution,
		Language:    result.AudioLanguage.OrEmpty(),
		Tier:        string(result.Tier),
		MaxQuality:  maxQuality,
		SelectedAt:  time.Now(),
	}
}
