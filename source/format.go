package source

import (
	"math"
	"regexp"
	"strings"

	"github.com/safeplay-cli/safeplay/stream"
)

// RawFormat is a single format record as emitted by extraction tools like yt-dlp.
// Bitrates are in kbit/s.
type RawFormat struct {
	URL        string  `json:"url"`
	Ext        string  `json:"ext"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	TBR        float64 `json:"tbr"`
	VBR        float64 `json:"vbr"`
	ABR        float64 `json:"abr"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	Language   string  `json:"language"`
	Protocol   string  `json:"protocol"`
	FormatNote string  `json:"format_note"`
}

const noCodec = "none"

var qualityNote = regexp.MustCompile(`(?i)^\d+p\d*$`)

func (f RawFormat) hasVideo() bool {
	return f.VCodec != noCodec
}

func (f RawFormat) hasAudio() bool {
	return f.ACodec != "" && f.ACodec != noCodec
}

func (f RawFormat) manifest() bool {
	return strings.Contains(strings.ToLower(f.Protocol), "m3u8") || stream.IsSegmentedManifest(f.URL)
}

// Partition splits raw formats into video and audio candidates.
// Formats without a URL, and formats carrying neither video nor audio (storyboards), are dropped.
func Partition(formats []RawFormat) (videos []stream.VideoCandidate, audios []stream.AudioCandidate) {
	for _, f := range formats {
		if f.URL == "" {
			continue
		}

		switch {
		case f.hasVideo():
			videos = append(videos, f.video())
		case f.hasAudio():
			audios = append(audios, f.audio())
		}
	}

	return videos, audios
}

func (f RawFormat) video() stream.VideoCandidate {
	bitrate := f.VBR
	if bitrate <= 0 {
		bitrate = f.TBR
	}

	var label string
	if qualityNote.MatchString(strings.TrimSpace(f.FormatNote)) {
		label = strings.TrimSpace(f.FormatNote)
	}

	return stream.VideoCandidate{
		SourceURL:           f.URL,
		Container:           f.Ext,
		Width:               f.Width,
		Height:              f.Height,
		FrameRate:           int(math.Round(f.FPS)),
		Bitrate:             kbps(bitrate),
		QualityLabel:        label,
		HasEmbeddedAudio:    f.hasAudio(),
		IsSegmentedManifest: f.manifest(),
	}
}

func (f RawFormat) audio() stream.AudioCandidate {
	bitrate := f.ABR
	if bitrate <= 0 {
		bitrate = f.TBR
	}

	return stream.AudioCandidate{
		SourceURL:           f.URL,
		Language:            strings.ToLower(strings.TrimSpace(f.Language)),
		Container:           f.Ext,
		Bitrate:             kbps(bitrate),
		IsSegmentedManifest: f.manifest(),
	}
}

func kbps(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v * 1000))
}
