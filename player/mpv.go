package player

import (
	"fmt"
	"os/exec"
	"time"

	"github.com/safeplay-cli/safeplay/log"
	"github.com/safeplay-cli/safeplay/stream"
)

const closeTimeout = 3 * time.Second

// MPV plays results with mpv. A separate audio track is handed over with
// --audio-file so mpv muxes it with the video at playback time.
type MPV struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewMPV() *MPV {
	return &MPV{}
}

func (m *MPV) Name() string {
	return "mpv"
}

func (m *MPV) Args(result stream.Result, title string) ([]string, error) {
	video, audio, err := targets(result)
	if err != nil {
		return nil, err
	}

	// Only title and targets. Everything else is left to the user's mpv.conf.
	args := []string{"--no-terminal", "--force-window=yes"}

	if title = sanitizeTitle(title); title != "" {
		args = append(args,
			fmt.Sprintf("--force-media-title=%s", title),
			fmt.Sprintf("--title=%s", title),
		)
	}

	if audio != "" {
		args = append(args, fmt.Sprintf("--audio-file=%s", audio))
	}

	return append(args, video), nil
}

func (m *MPV) Play(result stream.Result, title string) error {
	args, err := m.Args(result, title)
	if err != nil {
		return err
	}

	bin, err := exec.LookPath("mpv")
	if err != nil {
		return fmt.Errorf("mpv not found: %w", err)
	}

	m.cmd = exec.Command(bin, args...)
	m.cmd.SysProcAttr = sysProcAttr()

	log.WithFields(log.Fields{
		"player": m.Name(),
		"tier":   result.Tier,
		"audio":  result.HasSeparateAudio(),
	}).Info("starting playback")

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	return nil
}

func (m *MPV) Wait() <-chan struct{} {
	if m.exited == nil {
		done := make(chan struct{})
		close(done)
		return done
	}

	return m.exited
}

func (m *MPV) Close() error {
	if m.cmd == nil || m.cmd.Process == nil {
		return nil
	}

	select {
	case <-m.exited:
		return nil
	default:
	}

	_ = terminateProcess(m.cmd)

	select {
	case <-m.exited:
	case <-time.After(closeTimeout):
		_ = killProcess(m.cmd)
	}

	return nil
}
