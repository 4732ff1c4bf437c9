// Package player launches an external media player for a selected stream.
package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/stream"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Player starts playback of a selection result.
type Player interface {
	// Name of the backend, as accepted by New.
	Name() string

	// Args returns the command line the backend would be started with.
	Args(result stream.Result, title string) ([]string, error)

	// Play starts the backend. It does not wait for playback to finish.
	Play(result stream.Result, title string) error

	// Wait returns a channel that is closed when the player exits.
	Wait() <-chan struct{}

	// Close terminates the player.
	Close() error
}

var backends = map[string]func() Player{
	"mpv":  func() Player { return NewMPV() },
	"iina": func() Player { return NewIINA() },
}

// Available lists backend names accepted by New.
func Available() []string {
	names := lo.Keys(backends)
	return sortedCopy(names)
}

// New returns the backend with the given name.
func New(name string) (Player, error) {
	constructor, ok := backends[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown player %q, available: %s", name, strings.Join(Available(), ", "))
	}

	return constructor(), nil
}

// Default returns the backend configured by player.default.
func Default() (Player, error) {
	return New(viper.GetString(key.Player))
}

// Watch blocks until p exits or ctx is done. In the latter case p is closed
// and the context error is returned.
func Watch(ctx context.Context, p Player) error {
	select {
	case <-p.Wait():
		return nil
	case <-ctx.Done():
		if err := p.Close(); err != nil {
			return err
		}
		return ctx.Err()
	}
}
