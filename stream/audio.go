package stream

import (
	"strings"

	"github.com/samber/lo"
)

// DefaultLanguage is used when the caller supplies no language preference.
const DefaultLanguage = "en"

// SelectBestAudio picks the audio rendition to pair with a separate video rendition.
//
// Ranking is language match, then progressive over manifest, then m4a container,
// then bitrate. Manifest tracks are only returned when nothing else exists.
func SelectBestAudio(candidates []AudioCandidate, preferred []string) (AudioCandidate, error) {
	if len(candidates) == 0 {
		return AudioCandidate{}, ErrNoAudioAvailable
	}

	progressive := lo.Filter(candidates, func(a AudioCandidate, _ int) bool {
		return ClassifyAudio(a).Delivery == Progressive
	})

	for _, language := range NormalizeLanguages(preferred) {
		matching := lo.Filter(progressive, func(a AudioCandidate, _ int) bool {
			return strings.EqualFold(strings.TrimSpace(a.Language), language)
		})

		if len(matching) > 0 {
			return lo.MaxBy(matching, betterAudio), nil
		}
	}

	if len(progressive) > 0 {
		return lo.MaxBy(progressive, betterAudio), nil
	}

	return lo.MaxBy(candidates, betterAudio), nil
}

// NormalizeLanguages trims and lowercases language tags, dropping blanks and duplicates.
// An empty result becomes [DefaultLanguage].
func NormalizeLanguages(languages []string) []string {
	normalized := lo.Uniq(lo.FilterMap(languages, func(l string, _ int) (string, bool) {
		l = strings.ToLower(strings.TrimSpace(l))
		return l, l != ""
	}))

	if len(normalized) == 0 {
		return []string{DefaultLanguage}
	}

	return normalized
}

// betterAudio reports whether a ranks strictly above b.
func betterAudio(a, b AudioCandidate) bool {
	if am, bm := isM4A(a.Container), isM4A(b.Container); am != bm {
		return am
	}
	return max(a.Bitrate, 0) > max(b.Bitrate, 0)
}
