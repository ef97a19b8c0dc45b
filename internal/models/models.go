package models

import "fmt"

// Image is one frame of an exercise's image sequence.
type Image struct {
	Image    string `yaml:"image"`
	Duration int    `yaml:"duration"` // seconds
	MirrorX  bool   `yaml:"mirror_x"`
}

// Exercise is a titled, timed activity with an image sequence and optional audio.
type Exercise struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"` // may contain <b>/<i> markup
	Audio       string  `yaml:"audio"`
	Duration    int     `yaml:"duration"` // seconds
	Sequence    []Image `yaml:"sequence"`
}

// TotalSequence is the length of one pass through the image sequence.
func (e Exercise) TotalSequence() int {
	total := 0
	for _, img := range e.Sequence {
		total += img.Duration
	}
	return total
}

// BreakID identifies one of the break timers.
type BreakID int

const (
	MicroBreak BreakID = iota
	RestBreak
	DailyLimit
)

// BreakIDs lists every timer in display order.
var BreakIDs = []BreakID{MicroBreak, RestBreak, DailyLimit}

// String returns the configuration key for the break.
func (b BreakID) String() string {
	switch b {
	case MicroBreak:
		return "micro_pause"
	case RestBreak:
		return "rest_break"
	case DailyLimit:
		return "daily_limit"
	default:
		return fmt.Sprintf("break_%d", int(b))
	}
}

// Label is the human readable timer name.
func (b BreakID) Label() string {
	switch b {
	case MicroBreak:
		return "Micro-break"
	case RestBreak:
		return "Rest break"
	case DailyLimit:
		return "Daily limit"
	default:
		return b.String()
	}
}

// TimerPrefs holds the settings of a single break timer. Durations are in seconds.
type TimerPrefs struct {
	Enabled        bool
	Limit          int
	AutoReset      int
	Snooze         int
	MaxPreludes    int
	ExercisesCount int // rest break only
}

// SoundMode selects how sounds are played.
type SoundMode int

const (
	SoundNone SoundMode = iota
	SoundCard
	SoundSpeaker
)

var soundModeNames = []string{"none", "soundcard", "speaker"}

func (m SoundMode) String() string {
	if m < 0 || int(m) >= len(soundModeNames) {
		return "none"
	}
	return soundModeNames[m]
}

// Label is the text shown in the preferences dialog.
func (m SoundMode) Label() string {
	switch m {
	case SoundCard:
		return "Play sounds using sound card"
	case SoundSpeaker:
		return "Play sounds using built-in speaker"
	default:
		return "No sounds"
	}
}

// ParseSoundMode is the inverse of SoundMode.String.
func ParseSoundMode(s string) (SoundMode, bool) {
	for i, name := range soundModeNames {
		if name == s {
			return SoundMode(i), true
		}
	}
	return SoundNone, false
}

// OperationMode is the global operating mode of the break reminder.
type OperationMode int

const (
	OperationNormal OperationMode = iota
	OperationQuiet
	OperationSuspended
)

func (m OperationMode) String() string {
	switch m {
	case OperationQuiet:
		return "quiet"
	case OperationSuspended:
		return "suspended"
	default:
		return "normal"
	}
}

// Timer box views.
const (
	ViewMainWindow = "main_window"
	ViewApplet     = "applet"
)

// Timer box slot flags.
const (
	SlotHidden          = 1 << iota
	SlotShowWhenActive
)

// TimerSlot places one break timer inside a timer box.
type TimerSlot struct {
	Slot  int
	Flags int
}

// TimerBoxPrefs configures a status view (main window or applet).
type TimerBoxPrefs struct {
	Enabled   bool
	CycleTime int // seconds
	Slots     map[BreakID]TimerSlot
}
