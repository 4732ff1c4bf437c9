package stream

import "strings"

// Layout describes which media a rendition carries.
type Layout int

const (
	// Muxed renditions carry video and audio in one progressive-friendly container.
	Muxed Layout = iota
	VideoOnly
	AudioOnly
)

func (l Layout) String() string {
	switch l {
	case Muxed:
		return "muxed"
	case VideoOnly:
		return "video-only"
	case AudioOnly:
		return "audio-only"
	default:
		return "unknown"
	}
}

// Delivery describes how a rendition is served.
type Delivery int

const (
	// Progressive renditions are single playable files.
	Progressive Delivery = iota
	// SegmentedManifest renditions are playlists that need a streaming player.
	SegmentedManifest
)

func (d Delivery) String() string {
	switch d {
	case Progressive:
		return "progressive"
	case SegmentedManifest:
		return "manifest"
	default:
		return "unknown"
	}
}

// Format is the closed classification of a rendition.
type Format struct {
	Layout   Layout
	Delivery Delivery
}

func (f Format) String() string {
	return f.Layout.String() + "/" + f.Delivery.String()
}

// IsSegmentedManifest reports whether the URL or file path ends in ".m3u8".
// Query string and fragment are ignored. Windows paths such as D:\show\index.m3u8
// and opaque forms such as file:a.m3u8 are matched on the same suffix.
func IsSegmentedManifest(rawURL string) bool {
	path, _, _ := strings.Cut(rawURL, "?")
	path, _, _ = strings.Cut(path, "#")

	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(path)), ".m3u8")
}

// IsMuxed reports whether the video rendition is an mp4-family file with embedded audio.
func IsMuxed(v VideoCandidate) bool {
	return v.HasEmbeddedAudio && isMP4(v.Container)
}

// ClassifyVideo tags a video rendition with its layout and delivery.
func ClassifyVideo(v VideoCandidate) Format {
	f := Format{Layout: VideoOnly, Delivery: deliveryOf(v.SourceURL, v.IsSegmentedManifest)}
	if IsMuxed(v) {
		f.Layout = Muxed
	}
	return f
}

// ClassifyAudio tags an audio rendition with its layout and delivery.
func ClassifyAudio(a AudioCandidate) Format {
	return Format{Layout: AudioOnly, Delivery: deliveryOf(a.SourceURL, a.IsSegmentedManifest)}
}

func deliveryOf(rawURL string, flagged bool) Delivery {
	if flagged || IsSegmentedManifest(rawURL) {
		return SegmentedManifest
	}
	return Progressive
}

// containerName reduces "video/mp4; codecs=..." and " MP4 " alike to "mp4".
func containerName(container string) string {
	c := strings.ToLower(strings.TrimSpace(container))
	if i := strings.IndexByte(c, ';'); i >= 0 {
		c = c[:i]
	}
	if i := strings.IndexByte(c, '/'); i >= 0 {
		c = c[i+1:]
	}
	return strings.TrimSpace(c)
}

func isMP4(container string) bool {
	switch containerName(container) {
	case "mp4", "m4v":
		return true
	default:
		return false
	}
}

func isM4A(container string) bool {
	c := strings.ToLower(strings.TrimSpace(container))
	if strings.HasPrefix(c, "audio/mp4") {
		return true
	}

	switch containerName(c) {
	case "m4a", "mp4a":
		return true
	default:
		return false
	}
}
