// Package history remembers the last stream selection made for each catalogue.
package history

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/source"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*SavedSelection](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved selection keyed by catalogue.
func Get() (map[string]*SavedSelection, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedSelection), nil
	}
	return cached, nil
}

// List returns saved selections, most recent first.
// A non-empty query keeps only entries whose title or id fuzzily match it.
func List(query string) ([]*SavedSelection, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	selections := lo.Values(saved)
	if query = strings.TrimSpace(query); query != "" {
		selections = lo.Filter(selections, func(s *SavedSelection, _ int) bool {
			return fuzzy.MatchNormalizedFold(query, s.Title) || fuzzy.MatchNormalizedFold(query, s.CatalogueID)
		})
	}

	slices.SortFunc(selections, func(a, b *SavedSelection) int {
		return b.SelectedAt.Compare(a.SelectedAt)
	})

	return selections, nil
}

// Save records result as the latest selection for the catalogue.
func Save(c *source.Catalogue, result stream.Result, maxQuality string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedSelection(c, result, maxQuality)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove deletes every record of the catalogue with the given id.
// It reports whether anything was removed.
func Remove(catalogueID string) (bool, error) {
	saved, err := Get()
	if err != nil {
		return false, err
	}

	var removed bool
	for k, s := range saved {
		if s.CatalogueID == catalogueID {
			delete(saved, k)
			removed = true
		}
	}

	if !removed {
		return false, nil
	}

	return true, cacher.Set(saved)
}

// Clear forgets every saved selection.
func Clear() error {
	return cacher.Set(make(map[string]*SavedSelection))
}
