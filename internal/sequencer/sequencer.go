// Package sequencer advances an exercise player through a circular list of
// exercises and, within each exercise, a circular list of timed images.
//
// A Sequencer is driven from a single goroutine: a one second heartbeat calls
// Tick and user navigation calls GoForward, GoBack, TogglePause and Stop.
package sequencer

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/sound"
	"github.com/akyairhashvil/restbreak/internal/util"
)

var (
	ErrNoExercises   = errors.New("no exercises")
	ErrEmptySequence = errors.New("exercise has no images")
)

// Display renders the sequencer's state.
type Display interface {
	ShowExercise(models.Exercise)
	ShowImage(models.Image)
	SetProgress(remaining float64)
	SetPaused(paused bool)
}

// Audio narrates an exercise. It is an optional capability.
type Audio interface {
	Load(path string) error
	Play() error
	Pause() error
	Resume() error
	Unload() error
	SetVolume(volume int) error
}

// Policy decides what happens when an exercise's time runs out.
type Policy int

const (
	// PolicyAuto picks PolicySilentStop when narration is available, PolicyAnnounce otherwise.
	PolicyAuto Policy = iota
	// PolicyAnnounce moves on to the next exercise and plays a sound, stopping
	// after the configured number of exercises.
	PolicyAnnounce
	// PolicySilentStop stops as soon as the narrated exercise is over, without a sound.
	PolicySilentStop
)

func (p Policy) String() string {
	switch p {
	case PolicyAnnounce:
		return "announce"
	case PolicySilentStop:
		return "silent"
	default:
		return "auto"
	}
}

// ParsePolicy accepts the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "auto":
		return PolicyAuto, nil
	case "announce":
		return PolicyAnnounce, nil
	case "silent":
		return PolicySilentStop, nil
	default:
		return PolicyAuto, fmt.Errorf("unknown policy %q", s)
	}
}

// Options wires a Sequencer to its collaborators. Only Exercises and Rotation are required.
type Options struct {
	Exercises []models.Exercise
	Rotation  *Rotation
	Display   Display
	Sounds    sound.Player
	Audio     Audio
	Policy    Policy
	// ResolvePath completes the exercise's audio path; identity when nil.
	ResolvePath func(string) string
	Volume      int
	// OnStop is called once when the session stops.
	OnStop func()
}

// Snapshot is a copy of the playback cursor.
type Snapshot struct {
	Exercise       int
	Image          int
	Elapsed        int
	SeqTime        int
	Paused         bool
	Stopped        bool
	ExerciseNumber int
	ExerciseCount  int
}

// Sequencer is the playback cursor over an exercise list.
type Sequencer struct {
	exercises []models.Exercise
	rotation  *Rotation
	display   Display
	sounds    sound.Player
	audio     Audio
	policy    Policy
	resolve   func(string) string
	volume    int
	onStop    func()

	exercise int
	image    int
	elapsed  int
	seqTime  int
	paused   bool
	stopped  bool
	// exerciseNum counts exercises completed in this session; exerciseCount
	// ends the session when reached (0 means never).
	exerciseNum   int
	exerciseCount int
}

// New validates the exercise list and starts the first exercise.
func New(opts Options) (*Sequencer, error) {
	if len(opts.Exercises) == 0 {
		return nil, ErrNoExercises
	}
	for i, ex := range opts.Exercises {
		if len(ex.Sequence) == 0 {
			return nil, fmt.Errorf("exercise %d (%q): %w", i, ex.Title, ErrEmptySequence)
		}
	}
	s := &Sequencer{
		exercises: opts.Exercises,
		rotation:  opts.Rotation,
		display:   opts.Display,
		sounds:    opts.Sounds,
		audio:     opts.Audio,
		policy:    opts.Policy,
		resolve:   opts.ResolvePath,
		volume:    opts.Volume,
		onStop:    opts.OnStop,
	}
	if s.rotation == nil {
		s.rotation = NewRotation()
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.sounds == nil {
		s.sounds = sound.Silent{}
	}
	if s.resolve == nil {
		s.resolve = func(p string) string { return p }
	}
	if s.policy == PolicyAuto {
		s.policy = PolicyAnnounce
		if s.audio != nil {
			s.policy = PolicySilentStop
		}
	}
	s.Reset()
	return s, nil
}

// Reset starts a new session at the exercise after the one last shown in this process.
func (s *Sequencer) Reset() {
	s.exercise = s.rotation.Start(len(s.exercises))
	s.exerciseNum = 0
	s.paused = false
	s.stopped = false
	s.display.SetPaused(false)
	s.startExercise()
}

// SetExerciseCount ends the session after n exercises; 0 plays on until stopped.
func (s *Sequencer) SetExerciseCount(n int) {
	if n < 0 {
		n = 0
	}
	s.exerciseCount = n
}

// Tick advances the cursor by one second.
func (s *Sequencer) Tick() {
	if s.paused || s.stopped {
		return
	}
	ex := s.exercises[s.exercise]
	s.elapsed++
	if s.elapsed >= ex.Duration {
		s.finishExercise()
		return
	}
	s.refreshSequence()
	s.refreshProgress()
}

func (s *Sequencer) finishExercise() {
	if s.policy == PolicySilentStop {
		s.Stop()
		return
	}
	s.GoForward()
	s.exerciseNum++
	if s.exerciseNum == s.exerciseCount {
		s.Stop()
	}
	if s.stopped {
		s.sounds.Play(sound.ExercisesEnded)
	} else {
		s.sounds.Play(sound.ExerciseEnded)
	}
}

// GoForward switches to the next exercise, wrapping after the last.
func (s *Sequencer) GoForward() {
	s.moveTo(s.exercise + 1)
}

// GoBack switches to the previous exercise, wrapping before the first.
func (s *Sequencer) GoBack() {
	s.moveTo(s.exercise - 1)
}

func (s *Sequencer) moveTo(i int) {
	s.exercise = util.Wrap(i, len(s.exercises))
	s.rotation.Record(s.exercise)
	s.startExercise()
}

// Pause freezes the cursor without resetting it.
func (s *Sequencer) Pause() {
	if s.paused {
		return
	}
	s.paused = true
	s.display.SetPaused(true)
	if s.audio != nil {
		util.LogError("pause narration", s.audio.Pause())
	}
}

// Resume continues after Pause.
func (s *Sequencer) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.display.SetPaused(false)
	if s.audio != nil {
		util.LogError("resume narration", s.audio.Resume())
	}
}

// TogglePause flips between Pause and Resume.
func (s *Sequencer) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Stop ends the session. Only the first call notifies the owner.
func (s *Sequencer) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.audio != nil {
		util.LogError("unload narration", s.audio.Unload())
	}
	if s.onStop != nil {
		s.onStop()
	}
}

// SetVolume changes the narration volume, if any.
func (s *Sequencer) SetVolume(volume int) {
	s.volume = volume
	if s.audio != nil {
		util.LogError("set narration volume", s.audio.SetVolume(volume))
	}
}

func (s *Sequencer) startExercise() {
	ex := s.exercises[s.exercise]
	if s.audio != nil {
		util.LogError("unload narration", s.audio.Unload())
		if ex.Audio != "" {
			s.startAudio(s.resolve(ex.Audio))
		}
	}
	s.display.ShowExercise(ex)
	s.elapsed = 0
	s.seqTime = 0
	// One before the first image, so the refresh below shows image 0.
	s.image = -1
	s.refreshProgress()
	s.refreshSequence()
}

func (s *Sequencer) startAudio(path string) {
	if err := s.audio.Load(path); err != nil {
		util.LogError("load narration", err)
		return
	}
	util.LogError("set narration volume", s.audio.SetVolume(s.volume))
	util.LogError("play narration", s.audio.Play())
}

func (s *Sequencer) refreshSequence() {
	if s.elapsed < s.seqTime {
		return
	}
	seq := s.exercises[s.exercise].Sequence
	s.image = util.Wrap(s.image+1, len(seq))
	img := seq[s.image]
	s.seqTime += img.Duration
	s.display.ShowImage(img)
}

func (s *Sequencer) refreshProgress() {
	s.display.SetProgress(s.Progress())
}

// Current is the exercise being played.
func (s *Sequencer) Current() models.Exercise { return s.exercises[s.exercise] }

// CurrentImage is the image being shown.
func (s *Sequencer) CurrentImage() models.Image {
	return s.exercises[s.exercise].Sequence[s.image]
}

// Elapsed is the number of seconds spent on the current exercise.
func (s *Sequencer) Elapsed() int { return s.elapsed }

// Remaining is the number of seconds left on the current exercise.
func (s *Sequencer) Remaining() int { return s.exercises[s.exercise].Duration - s.elapsed }

// Progress is the fraction of the current exercise still to go.
func (s *Sequencer) Progress() float64 {
	d := s.exercises[s.exercise].Duration
	if d <= 0 {
		return 0
	}
	return 1 - float64(s.elapsed)/float64(d)
}

func (s *Sequencer) Paused() bool        { return s.paused }
func (s *Sequencer) Stopped() bool       { return s.stopped }
func (s *Sequencer) ExerciseNumber() int { return s.exerciseNum }
func (s *Sequencer) ExerciseCount() int  { return s.exerciseCount }
func (s *Sequencer) Len() int            { return len(s.exercises) }
func (s *Sequencer) Policy() Policy      { return s.policy }
func (s *Sequencer) Volume() int         { return s.volume }
func (s *Sequencer) HasAudio() bool      { return s.audio != nil }

// Snapshot copies the playback cursor.
func (s *Sequencer) Snapshot() Snapshot {
	return Snapshot{
		Exercise:       s.exercise,
		Image:          s.image,
		Elapsed:        s.elapsed,
		SeqTime:        s.seqTime,
		Paused:         s.paused,
		Stopped:        s.stopped,
		ExerciseNumber: s.exerciseNum,
		ExerciseCount:  s.exerciseCount,
	}
}

type nopDisplay struct{}

func (nopDisplay) ShowExercise(models.Exercise) {}
func (nopDisplay) ShowImage(models.Image)       {}
func (nopDisplay) SetProgress(float64)          {}
func (nopDisplay) SetPaused(bool)               {}
