package sound

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/akyairhashvil/restbreak/internal/config"
)

// CommandBuilder builds the process that narrates path at volume (0..1000).
type CommandBuilder func(path string, volume int) *exec.Cmd

// Mpg123 narrates through mpg123, scaling its output by volume.
func Mpg123(path string, volume int) *exec.Cmd {
	scale := volume * 32768 / 1000
	return exec.Command("mpg123", "-q", "-f", strconv.Itoa(scale), path)
}

// SpokenAudio narrates exercises through an external player process.
// Volume changes apply to the next Play.
type SpokenAudio struct {
	build  CommandBuilder
	path   string
	volume int
	cmd    *exec.Cmd
	paused bool
}

// NewSpokenAudio returns narration driven by build. A nil build uses Mpg123.
func NewSpokenAudio(build CommandBuilder) *SpokenAudio {
	if build == nil {
		build = Mpg123
	}
	return &SpokenAudio{build: build, volume: config.DefaultSpeakVolume}
}

func (a *SpokenAudio) Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("load narration: %w", err)
	}
	a.path = path
	return nil
}

func (a *SpokenAudio) Play() error {
	if a.path == "" {
		return nil
	}
	a.stopProcess()
	cmd := a.build(a.path, a.volume)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("play narration %s: %w", a.path, err)
	}
	a.cmd = cmd
	a.paused = false
	go func() { _ = cmd.Wait() }()
	return nil
}

func (a *SpokenAudio) Pause() error {
	if a.cmd == nil || a.paused {
		return nil
	}
	if err := suspend(a.cmd.Process); err != nil {
		return fmt.Errorf("pause narration: %w", err)
	}
	a.paused = true
	return nil
}

func (a *SpokenAudio) Resume() error {
	if a.cmd == nil || !a.paused {
		return nil
	}
	if err := resume(a.cmd.Process); err != nil {
		return fmt.Errorf("resume narration: %w", err)
	}
	a.paused = false
	return nil
}

func (a *SpokenAudio) Unload() error {
	a.stopProcess()
	a.path = ""
	return nil
}

func (a *SpokenAudio) SetVolume(volume int) error {
	if volume < 0 || volume > 1000 {
		return fmt.Errorf("volume %d out of range", volume)
	}
	a.volume = volume
	return nil
}

// Volume reports the level used for the next Play.
func (a *SpokenAudio) Volume() int { return a.volume }

func (a *SpokenAudio) stopProcess() {
	if a.cmd == nil || a.cmd.Process == nil {
		a.cmd = nil
		return
	}
	if a.paused {
		_ = resume(a.cmd.Process)
	}
	_ = a.cmd.Process.Kill()
	a.cmd = nil
	a.paused = false
}

// NextVolume steps to the next quieter level, wrapping from muted back to full.
// Unknown levels restart at full volume.
func NextVolume(current int) int {
	idx := VolumeIndex(current)
	return config.SpeakVolumes[(idx+1)%len(config.SpeakVolumes)]
}

// VolumeIndex finds current among the volume steps, 0 when absent.
func VolumeIndex(current int) int {
	for i := len(config.SpeakVolumes) - 1; i >= 0; i-- {
		if config.SpeakVolumes[i] == current {
			return i
		}
	}
	return 0
}
