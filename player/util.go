package player

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/safeplay-cli/safeplay/stream"
	"golang.org/x/exp/slices"
)

// sanitizeMediaTarget validates that a URL is safe to pass to a player.
// Catalogue files are untrusted and must not smuggle in flags.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}

// targets validates the video and optional audio URLs of a result.
func targets(result stream.Result) (video string, audio string, err error) {
	video, err = sanitizeMediaTarget(result.VideoURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid video target: %w", err)
	}

	if a, ok := result.AudioURL.Get(); ok {
		audio, err = sanitizeMediaTarget(a)
		if err != nil {
			return "", "", fmt.Errorf("invalid audio target: %w", err)
		}
	}

	return video, audio, nil
}

func sortedCopy(s []string) []string {
	s = slices.Clone(s)
	slices.Sort(s)
	return s
}
