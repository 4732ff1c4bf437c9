package version

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Compare compares two semantic versions, ignoring a leading "v" and any
// pre-release or build suffix. It returns 1 if a > b, -1 if a < b and 0 otherwise.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var v [3]int

	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	if i := strings.IndexAny(s, "-+"); i >= 0 {
		s = s[:i]
	}

	if _, err := fmt.Sscanf(s, "%d.%d.%d", &v[0], &v[1], &v[2]); err != nil {
		return v, fmt.Errorf("invalid version %q: %w", s, err)
	}

	return v, nil
}
