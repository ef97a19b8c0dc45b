package tui

import (
	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/exercises"
	"github.com/akyairhashvil/restbreak/internal/imaging"
	"github.com/akyairhashvil/restbreak/internal/sequencer"
	"github.com/akyairhashvil/restbreak/internal/sound"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ExercisesOptions configures the exercises panel.
type ExercisesOptions struct {
	Registry exercises.Registry
	Rotation *sequencer.Rotation
	Sounds   sound.Player
	Audio    sequencer.Audio
	Policy   sequencer.Policy
	Volume   int
	// Count ends the session after that many exercises; 0 plays until stopped.
	Count  int
	Images imaging.Loader
	// Standalone quits the program when the session stops. Otherwise the
	// panel emits StoppedMsg.
	Standalone bool
	// OnVolume persists a new spoken volume.
	OnVolume func(int)
}

// ExercisesModel is the exercises player panel.
type ExercisesModel struct {
	seq      *sequencer.Sequencer
	state    *panelState
	keys     *HandlerRegistry[ExercisesModel]
	progress progress.Model
	onVolume func(int)

	standalone bool
	width      int
	height     int
}

func NewExercisesModel(opts ExercisesOptions) (ExercisesModel, error) {
	state := newPanelState(opts.Images, opts.Registry.Resolve)
	seq, err := sequencer.New(sequencer.Options{
		Exercises:   opts.Registry.Exercises,
		Rotation:    opts.Rotation,
		Display:     state,
		Sounds:      opts.Sounds,
		Audio:       opts.Audio,
		Policy:      opts.Policy,
		ResolvePath: opts.Registry.Resolve,
		Volume:      opts.Volume,
		OnStop:      state.stop,
	})
	if err != nil {
		return ExercisesModel{}, err
	}
	seq.SetExerciseCount(opts.Count)

	t := CurrentTheme
	bar := progress.New(progress.WithGradient(t.ProgressFrom, t.ProgressTo), progress.WithoutPercentage())
	bar.Width = config.ProgressWidth

	return ExercisesModel{
		seq:        seq,
		state:      state,
		keys:       exercisesKeys(),
		progress:   bar,
		onVolume:   opts.OnVolume,
		standalone: opts.Standalone,
	}, nil
}

// Sequencer exposes the playback cursor.
func (m ExercisesModel) Sequencer() *sequencer.Sequencer { return m.seq }

func (m ExercisesModel) Init() tea.Cmd {
	return tickCmd(m.state.gen)
}

func (m ExercisesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case TickMsg:
		if m.state.stopped || msg.Gen != m.state.gen {
			return m, nil
		}
		m.seq.Tick()
		if m.state.stopped {
			return m, m.stopCmd()
		}
		return m, tickCmd(m.state.gen)
	case tea.KeyMsg:
		next, cmd, _ := m.keys.Handle(m, 0, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m ExercisesModel) stopCmd() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return stoppedCmd
}

func exercisesKeys() *HandlerRegistry[ExercisesModel] {
	r := NewHandlerRegistry[ExercisesModel]()
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{"left", "h"},
		Description: "Back",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			if m.state.stopped {
				return m, nil, false
			}
			m.seq.GoBack()
			return m, nil, true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{" ", "p"},
		Description: "Pause",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			if m.state.stopped {
				return m, nil, false
			}
			m.seq.TogglePause()
			return m, nil, true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{"right", "l"},
		Description: "Forward",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			if m.state.stopped {
				return m, nil, false
			}
			m.seq.GoForward()
			return m, nil, true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{"v"},
		Description: "Volume",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			if !m.seq.HasAudio() {
				return m, nil, false
			}
			vol := sound.NextVolume(m.seq.Volume())
			m.seq.SetVolume(vol)
			if m.onVolume != nil {
				m.onVolume(vol)
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{"r"},
		Description: "Restart",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			restart := m.state.stopped
			m.state.stopped = false
			m.seq.Reset()
			if restart {
				return m, tickCmd(m.state.gen), true
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:        []string{"q", "esc"},
		Description: "Stop",
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			if m.state.stopped {
				return m, nil, false
			}
			m.seq.Stop()
			return m, m.stopCmd(), true
		},
	})
	r.Register(KeyBinding[ExercisesModel]{
		Keys:     []string{"ctrl+c"},
		Priority: 10,
		Handler: func(m ExercisesModel, _ string) (ExercisesModel, tea.Cmd, bool) {
			m.seq.Stop()
			return m, tea.Quit, true
		},
	})
	return r
}
