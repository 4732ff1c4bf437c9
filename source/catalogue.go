package source

import (
	"fmt"

	"github.com/safeplay-cli/safeplay/stream"
)

// Catalogue is the raw, unordered set of renditions offered for one piece of content.
type Catalogue struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	// Origin names where the content comes from (e.g. "youtube", "local", "dlna").
	Origin string `json:"origin,omitempty"`
	// ISO-8601 duration, e.g. "PT4M13S".
	Duration  string `json:"duration,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`

	Videos []stream.VideoCandidate `json:"videos"`
	Audios []stream.AudioCandidate `json:"audios"`
}

func (c *Catalogue) String() string {
	if c.Title != "" {
		return c.Title
	}
	return c.ID
}

// Seconds returns the advisory duration in seconds, 0 when unknown.
func (c *Catalogue) Seconds() int {
	return stream.ParseDuration(c.Duration)
}

// Request builds a selection request over this catalogue's renditions.
func (c *Catalogue) Request(languages []string, maxQuality string) stream.Request {
	return stream.NewRequest(c.Videos, c.Audios, languages, maxQuality)
}

// Select runs the stream selection over this catalogue.
func (c *Catalogue) Select(languages []string, maxQuality string) (stream.Result, error) {
	result, err := stream.SelectHighestQualityStream(c.Request(languages, maxQuality))
	if err != nil {
		return stream.Result{}, fmt.Errorf("%s: %w", c, err)
	}
	return result, nil
}
