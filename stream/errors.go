package stream

import "errors"

var (
	// ErrNoAudioAvailable is returned by SelectBestAudio when there is nothing to choose from.
	ErrNoAudioAvailable = errors.New("no audio available")

	// ErrNoSuitableStream is returned when no video rendition survives the quality ceiling.
	// It is fatal for a single playback attempt only.
	ErrNoSuitableStream = errors.New("no suitable stream")
)
