// Package stream chooses the single best playable video and audio pairing for a piece of content.
//
// The engine is pure: it reads the candidate lists it is given, never mutates them,
// and returns a freshly allocated Result. Nothing is cached between calls.
package stream

import "github.com/samber/mo"

// VideoCandidate is one video rendition offered for a piece of content.
type VideoCandidate struct {
	// Direct URL of the rendition.
	SourceURL string `json:"url"`
	// Container or mime type (e.g. "mp4", "webm", "video/mp4").
	Container string `json:"container"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	// Frames per second, 0 when unknown.
	FrameRate int `json:"fps,omitempty"`
	// Bits per second, 0 when unknown.
	Bitrate int `json:"bitrate,omitempty"`
	// Free-text quality label (e.g. "720p", "1080p60").
	QualityLabel string `json:"quality,omitempty"`
	// HasEmbeddedAudio marks renditions that carry an audio track in the same file.
	HasEmbeddedAudio bool `json:"hasAudio"`
	// IsSegmentedManifest marks playlist style renditions (HLS) known to the extractor.
	IsSegmentedManifest bool `json:"manifest"`
}

// AudioCandidate is one audio-only rendition offered for a piece of content.
type AudioCandidate struct {
	SourceURL string `json:"url"`
	// Lowercase language tag (e.g. "en", "it").
	Language            string `json:"language"`
	Container           string `json:"container"`
	Bitrate             int    `json:"bitrate,omitempty"`
	IsSegmentedManifest bool   `json:"manifest"`
}

// Request bundles everything a single selection needs.
type Request struct {
	Videos []VideoCandidate
	Audios []AudioCandidate
	// PreferredLanguages in order of preference. Defaults to ["en"] when empty.
	PreferredLanguages []string
	// MaxQuality is the parental quality ceiling label (e.g. "720p").
	MaxQuality mo.Option[string]
}

// NewRequest builds a Request, treating an empty maxQuality as "no ceiling".
func NewRequest(videos []VideoCandidate, audios []AudioCandidate, languages []string, maxQuality string) Request {
	req := Request{
		Videos:             videos,
		Audios:             audios,
		PreferredLanguages: languages,
		MaxQuality:         mo.None[string](),
	}

	if maxQuality != "" {
		req.MaxQuality = mo.Some(maxQuality)
	}

	return req
}
