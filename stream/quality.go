package stream

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/safeplay-cli/safeplay/util"
)

// DefaultCeiling is the height used for quality labels that are not recognized.
const DefaultCeiling = 1080

var ceilings = map[string]int{
	"144p":  144,
	"240p":  240,
	"360p":  360,
	"480p":  480,
	"720p":  720,
	"1080p": 1080,
	"1440p": 1440,
	"2160p": 2160,
	"4k":    2160,
}

// ParseMaxQuality resolves a quality label to a pixel height.
// Unknown labels, including the empty string, resolve to DefaultCeiling.
func ParseMaxQuality(label string) int {
	if height, ok := ceilings[strings.ToLower(strings.TrimSpace(label))]; ok {
		return height
	}

	return DefaultCeiling
}

// QualityLabels returns the recognized quality labels ordered from lowest to highest.
func QualityLabels() []string {
	return []string{"144p", "240p", "360p", "480p", "720p", "1080p", "1440p", "2160p", "4k"}
}

var durationPattern = regexp.MustCompile(`^PT(?:(?P<hours>\d+)H)?(?:(?P<minutes>\d+)M)?(?:(?P<seconds>\d+)S)?$`)

// ParseDuration converts an ISO-8601 duration of the form PT[nH][nM][nS] to seconds.
// Malformed input and totals that do not fit in an int yield 0.
func ParseDuration(iso string) int {
	iso = strings.TrimSpace(iso)
	if !durationPattern.MatchString(iso) {
		return 0
	}

	groups := util.ReGroups(durationPattern, iso)

	var total int
	for name, factor := range map[string]int{"hours": 3600, "minutes": 60, "seconds": 1} {
		raw := groups[name]
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0
		}

		if n > (math.MaxInt-total)/factor {
			return 0
		}

		total += n * factor
	}

	return total
}
