package source

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/util"
)

// document accepts both the native catalogue layout and an extraction tool dump
// with a flat "formats" array and a duration in seconds.
type document struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Origin    string          `json:"origin"`
	Extractor string          `json:"extractor_key"`
	Duration  json.RawMessage `json:"duration"`
	Thumbnail string          `json:"thumbnail"`

	Videos  []stream.VideoCandidate `json:"videos"`
	Audios  []stream.AudioCandidate `json:"audios"`
	Formats []RawFormat             `json:"formats"`
}

// Decode parses a catalogue document.
func Decode(data []byte) (*Catalogue, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	return doc.catalogue(), nil
}

func (doc *document) catalogue() *Catalogue {
	c := &Catalogue{
		ID:        doc.ID,
		Title:     doc.Title,
		Origin:    doc.Origin,
		Duration:  durationOf(doc.Duration),
		Thumbnail: doc.Thumbnail,
		Videos:    doc.Videos,
		Audios:    doc.Audios,
	}

	if c.Origin == "" {
		c.Origin = strings.ToLower(doc.Extractor)
	}

	videos, audios := Partition(doc.Formats)
	c.Videos = append(c.Videos, videos...)
	c.Audios = append(c.Audios, audios...)

	return c
}

// Open loads the catalogue document at path. The file stem is used when the document has no id.
func Open(path string) (*Catalogue, error) {
	var doc document
	if err := filesystem.ReadJSON(path, &doc); err != nil {
		return nil, err
	}

	c := doc.catalogue()
	if c.ID == "" {
		c.ID = util.FileStem(path)
	}

	return c, nil
}

// durationOf accepts either an ISO-8601 string or a number of seconds.
func durationOf(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var iso string
	if err := json.Unmarshal(raw, &iso); err == nil {
		return iso
	}

	var seconds float64
	if err := json.Unmarshal(raw, &seconds); err == nil && seconds > 0 {
		return isoDuration(int(math.Round(seconds)))
	}

	return ""
}

func isoDuration(seconds int) string {
	var b strings.Builder
	b.WriteString("PT")
	if h := seconds / 3600; h > 0 {
		fmt.Fprintf(&b, "%dH", h)
	}
	if m := seconds % 3600 / 60; m > 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	if s := seconds % 60; s > 0 || seconds == 0 {
		fmt.Fprintf(&b, "%dS", s)
	}
	return b.String()
}
