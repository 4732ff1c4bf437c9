package stream

import (
	"fmt"

	"github.com/samber/mo"
)

// Tier names the step of the cascade that produced a Result.
type Tier string

const (
	// TierMuxed is a single progressive file carrying both video and audio.
	TierMuxed Tier = "muxed"
	// TierSeparate is a progressive video paired with a separately selected audio track.
	TierSeparate Tier = "separate"
	// TierFallback is the last resort, manifests included.
	TierFallback Tier = "fallback"
)

// UndeterminedLanguage is reported for audio tracks that declare no language.
const UndeterminedLanguage = "und"

// Result describes the selected rendition pair.
// AudioURL and AudioLanguage are always present or absent together.
type Result struct {
	VideoURL      string            `json:"videoUrl"`
	AudioURL      mo.Option[string] `json:"audioUrl"`
	QualityLabel  string            `json:"qualityLabel"`
	Resolution    string            `json:"resolution"`
	FrameRate     mo.Option[int]    `json:"frameRate"`
	AudioLanguage mo.Option[string] `json:"audioLanguage"`
	Tier          Tier              `json:"tier"`
}

// HasSeparateAudio reports whether the player has to mux a second track.
func (r Result) HasSeparateAudio() bool {
	return r.AudioURL.IsPresent()
}

func (r Result) String() string {
	s := fmt.Sprintf("%s (%s)", r.QualityLabel, r.Resolution)
	if fps, ok := r.FrameRate.Get(); ok {
		s += fmt.Sprintf(" %dfps", fps)
	}
	if lang, ok := r.AudioLanguage.Get(); ok {
		s += " [" + lang + "]"
	}
	return s
}

func assemble(tier Tier, video VideoCandidate, audio mo.Option[AudioCandidate]) Result {
	result := Result{
		VideoURL:      video.SourceURL,
		AudioURL:      mo.None[string](),
		QualityLabel:  qualityLabelOf(video),
		Resolution:    fmt.Sprintf("%dx%d", max(video.Width, 0), max(video.Height, 0)),
		FrameRate:     mo.None[int](),
		AudioLanguage: mo.None[string](),
		Tier:          tier,
	}

	if video.FrameRate > 0 {
		result.FrameRate = mo.Some(video.FrameRate)
	}

	if a, ok := audio.Get(); ok {
		language := a.Language
		if language == "" {
			language = UndeterminedLanguage
		}
		result.AudioURL = mo.Some(a.SourceURL)
		result.AudioLanguage = mo.Some(language)
	}

	return result
}

func qualityLabelOf(v VideoCandidate) string {
	if v.QualityLabel != "" {
		return v.QualityLabel
	}
	if v.Height > 0 {
		return fmt.Sprintf("%dp", v.Height)
	}
	return ""
}
