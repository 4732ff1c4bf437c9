package stream

import (
	"errors"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// SelectHighestQualityStream walks the tier cascade and returns the best playable pairing.
//
// Video renditions above the quality ceiling are discarded first; renditions with an
// unknown height always pass. Audio is never limited by the ceiling.
// ErrNoSuitableStream is returned only when no video rendition is left.
func SelectHighestQualityStream(req Request) (Result, error) {
	videos := req.Videos
	if label, ok := req.MaxQuality.Get(); ok {
		ceiling := ParseMaxQuality(label)
		videos = lo.Filter(videos, func(v VideoCandidate, _ int) bool {
			return v.Height <= ceiling
		})
	}

	if len(videos) == 0 {
		return Result{}, ErrNoSuitableStream
	}

	muxed := lo.Filter(videos, func(v VideoCandidate, _ int) bool {
		return ClassifyVideo(v) == Format{Layout: Muxed, Delivery: Progressive}
	})
	if len(muxed) > 0 {
		return assemble(TierMuxed, lo.MaxBy(muxed, betterVideo), mo.None[AudioCandidate]()), nil
	}

	progressive := lo.Filter(videos, func(v VideoCandidate, _ int) bool {
		return ClassifyVideo(v).Delivery == Progressive
	})
	if len(progressive) > 0 {
		video := lo.MaxBy(progressive, betterVideo)
		audio, err := SelectBestAudio(req.Audios, req.PreferredLanguages)
		if err != nil {
			return assemble(TierSeparate, video, mo.None[AudioCandidate]()), nil
		}
		return assemble(TierSeparate, video, mo.Some(audio)), nil
	}

	audio, err := SelectBestAudio(req.Audios, req.PreferredLanguages)
	return assemble(TierFallback, lo.MaxBy(videos, betterVideo), fallbackAudio(req.Audios, audio, err)), nil
}

// fallbackAudio picks the audio for the last tier. A non-empty list that selection
// rejected still yields its first track.
func fallbackAudio(audios []AudioCandidate, selected AudioCandidate, err error) mo.Option[AudioCandidate] {
	switch {
	case err == nil:
		return mo.Some(selected)
	case errors.Is(err, ErrNoAudioAvailable) && len(audios) > 0:
		return mo.Some(audios[0])
	default:
		return mo.None[AudioCandidate]()
	}
}

// Select is a shorthand for SelectHighestQualityStream. An empty maxQuality means no ceiling.
func Select(videos []VideoCandidate, audios []AudioCandidate, languages []string, maxQuality string) (Result, error) {
	return SelectHighestQualityStream(NewRequest(videos, audios, languages, maxQuality))
}

// betterVideo orders by height, then frame rate. Unknown values count as zero.
func betterVideo(a, b VideoCandidate) bool {
	if ah, bh := max(a.Height, 0), max(b.Height, 0); ah != bh {
		return ah > bh
	}
	return max(a.FrameRate, 0) > max(b.FrameRate, 0)
}
