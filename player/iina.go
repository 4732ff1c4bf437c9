package player

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/safeplay-cli/safeplay/stream"
)

// IINA plays results with the macOS IINA app through LaunchServices.
// mpv options are forwarded with the --mpv- prefix.
type IINA struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func NewIINA() *IINA {
	return &IINA{}
}

func (i *IINA) Name() string {
	return "iina"
}

func (i *IINA) Args(result stream.Result, title string) ([]string, error) {
	video, audio, err := targets(result)
	if err != nil {
		return nil, err
	}

	args := []string{"-W", "-a", "IINA", video, "--args"}

	if title = sanitizeTitle(title); title != "" {
		args = append(args, fmt.Sprintf("--mpv-force-media-title=%s", title))
	}

	if audio != "" {
		args = append(args, fmt.Sprintf("--mpv-audio-file=%s", audio))
	}

	return args, nil
}

func (i *IINA) Play(result stream.Result, title string) error {
	if runtime.GOOS != "darwin" {
		return fmt.Errorf("IINA is only supported on macOS")
	}

	args, err := i.Args(result, title)
	if err != nil {
		return err
	}

	i.cmd = exec.Command("open", args...)
	if err := i.cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	i.exited = make(chan struct{})
	go func() {
		_ = i.cmd.Wait()
		close(i.exited)
	}()

	return nil
}

func (i *IINA) Wait() <-chan struct{} {
	if i.exited == nil {
		done := make(chan struct{})
		close(done)
		return done
	}

	return i.exited
}

func (i *IINA) Close() error {
	if i.cmd != nil && i.cmd.Process != nil {
		_ = i.cmd.Process.Kill()
	}
	return nil
}
