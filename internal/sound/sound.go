// Package sound plays the break reminder's notification sounds and the
// optional spoken exercise narration.
package sound

import (
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/util"
)

// Event identifies a notification sound.
type Event int

const (
	ExerciseEnded Event = iota
	ExercisesEnded
	BreakPrelude
	BreakIgnored
	RestBreakStarted
	RestBreakEnded
	MicroBreakStarted
	MicroBreakEnded
	DailyLimit
)

var eventNames = []string{
	"exercise-ended",
	"exercises-ended",
	"break-prelude",
	"break-ignored",
	"rest-break-started",
	"rest-break-ended",
	"micro-break-started",
	"micro-break-ended",
	"daily-limit",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event-%d", int(e))
	}
	return eventNames[e]
}

// File is the sound file name for the event.
func (e Event) File() string {
	return e.String() + ".wav"
}

// Player plays a sound by identifier.
//
//go:generate mockgen -destination=../sequencer/mock_player_test.go -package=sequencer github.com/akyairhashvil/restbreak/internal/sound Player
type Player interface {
	Play(Event)
}

// Silent drops every sound.
type Silent struct{}

func (Silent) Play(Event) {}

// Bell rings the terminal bell, the closest thing a terminal has to the PC speaker.
type Bell struct {
	Out io.Writer
}

func (b Bell) Play(Event) {
	if b.Out == nil {
		return
	}
	_, err := io.WriteString(b.Out, "\a")
	util.LogError("ring bell", err)
}

// DefaultPlayers are tried in order when playing through the sound card.
var DefaultPlayers = []string{"paplay", "aplay", "afplay"}

// Command plays event files through an external player program.
type Command struct {
	Dir    string
	Binary string
	start  func(*exec.Cmd) error
}

// NewCommand finds the first available player. It returns an error when none is installed.
func NewCommand(dir string, candidates []string) (*Command, error) {
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return &Command{Dir: dir, Binary: path}, nil
		}
	}
	return nil, fmt.Errorf("no sound player found (tried %v)", candidates)
}

func (c *Command) Play(e Event) {
	cmd := exec.Command(c.Binary, filepath.Join(c.Dir, e.File()))
	start := c.start
	if start == nil {
		start = startDetached
	}
	util.LogError("play "+e.String(), start(cmd))
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		util.LogError("sound player exited", cmd.Wait())
	}()
	return nil
}

// NewPlayer selects a Player for the configured sound mode. When the sound
// card is requested but no player program exists, it falls back to the bell.
func NewPlayer(mode models.SoundMode, dir string, out io.Writer) Player {
	switch mode {
	case models.SoundSpeaker:
		return Bell{Out: out}
	case models.SoundCard:
		cmd, err := NewCommand(dir, DefaultPlayers)
		if err != nil {
			util.LogError("sound card unavailable", err)
			return Bell{Out: out}
		}
		return cmd
	default:
		return Silent{}
	}
}
