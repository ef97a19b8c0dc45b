package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoPreferenceStore = errors.New("no preference store")

// PreferencesModel is the preferences dialog. Every change is saved as soon
// as it is made; invalid input is reverted and reported.
type PreferencesModel struct {
	ctx   context.Context
	store PreferenceStore
	guard FocusGuard
	keys  *HandlerRegistry[PreferencesModel]

	tabs  []prefsTab
	tab   int
	field int

	status     string
	err        string
	closed     bool
	standalone bool
	width      int
	height     int
}

// NewPreferencesModel loads the current settings. guard may be nil.
func NewPreferencesModel(ctx context.Context, store PreferenceStore, guard FocusGuard, standalone bool) (PreferencesModel, error) {
	if store == nil {
		return PreferencesModel{}, ErrNoPreferenceStore
	}
	tabs, err := loadTabs(ctx, store)
	if err != nil {
		return PreferencesModel{}, err
	}
	m := PreferencesModel{
		ctx:        ctx,
		store:      store,
		guard:      guard,
		keys:       preferencesKeys(),
		tabs:       tabs,
		standalone: standalone,
	}
	m.focusField()
	return m, nil
}

func (m PreferencesModel) Init() tea.Cmd {
	if m.guard != nil {
		m.guard.Focus(m.ctx)
	}
	return textinput.Blink
}

func (m PreferencesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.FocusMsg:
		if m.guard != nil && !m.closed {
			m.guard.Focus(m.ctx)
		}
		return m, nil
	case tea.BlurMsg:
		if m.guard != nil {
			m.guard.Blur(m.ctx)
		}
		return m, nil
	case tea.KeyMsg:
		if m.closed {
			return m, nil
		}
		next, cmd, handled := m.keys.Handle(m, m.currentTab().page, msg.String())
		if handled {
			return next, cmd
		}
		if f := next.currentField(); f != nil && f.editable() {
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return next, cmd
		}
		return next, nil
	}
	if f := m.currentField(); f != nil && f.editable() {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PreferencesModel) currentTab() *prefsTab {
	return &m.tabs[m.tab]
}

func (m PreferencesModel) currentField() *prefField {
	tab := m.currentTab()
	if m.field < 0 || m.field >= len(tab.fields) {
		return nil
	}
	return &tab.fields[m.field]
}

func (m *PreferencesModel) focusField() {
	for i := range m.tabs {
		for j := range m.tabs[i].fields {
			f := &m.tabs[i].fields[j]
			if i == m.tab && j == m.field && f.editable() {
				f.input.Focus()
			} else {
				f.input.Blur()
			}
		}
	}
}

// commit saves the current tab, reverting its text fields on failure.
func (m *PreferencesModel) commit() bool {
	tab := m.currentTab()
	values, err := fieldValues(tab.fields)
	if err == nil {
		err = tab.save(m.ctx, m.store, values)
	}
	for i := range tab.fields {
		f := &tab.fields[i]
		if !f.editable() {
			continue
		}
		if err != nil {
			f.revert()
		} else {
			f.markSaved()
		}
	}
	if err != nil {
		m.err = err.Error()
		m.status = ""
		return false
	}
	m.err = ""
	m.status = "Saved " + tab.title
	return true
}

// dirty reports whether a text field holds unsaved input.
func (m PreferencesModel) dirty() bool {
	for _, f := range m.currentTab().fields {
		if f.editable() && f.input.Value() != f.saved {
			return true
		}
	}
	return false
}

func (m *PreferencesModel) commitIfDirty() {
	if m.dirty() {
		m.commit()
	}
}

func (m *PreferencesModel) moveTab(delta int) {
	m.commitIfDirty()
	m.tab = (m.tab + delta + len(m.tabs)) % len(m.tabs)
	m.field = 0
	m.focusField()
}

func (m *PreferencesModel) movePage(delta int) {
	page := (m.currentTab().page + delta + len(pageTitles)) % len(pageTitles)
	m.commitIfDirty()
	for i, t := range m.tabs {
		if t.page == page {
			m.tab = i
			break
		}
	}
	m.field = 0
	m.focusField()
}

func (m *PreferencesModel) moveField(delta int) {
	m.commitIfDirty()
	n := len(m.currentTab().fields)
	m.field = (m.field + delta + n) % n
	m.focusField()
}

func (m PreferencesModel) close() (PreferencesModel, tea.Cmd) {
	m.commitIfDirty()
	m.closed = true
	if m.guard != nil {
		m.guard.Blur(m.ctx)
	}
	if m.standalone {
		return m, tea.Quit
	}
	return m, closedCmd
}

func preferencesKeys() *HandlerRegistry[PreferencesModel] {
	r := NewHandlerRegistry[PreferencesModel]()
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"tab", "shift+tab"},
		Description: "Tab",
		Handler: func(m PreferencesModel, key string) (PreferencesModel, tea.Cmd, bool) {
			if key == "tab" {
				m.moveTab(1)
			} else {
				m.moveTab(-1)
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"pgdown", "pgup"},
		Description: "Page",
		Handler: func(m PreferencesModel, key string) (PreferencesModel, tea.Cmd, bool) {
			if key == "pgdown" {
				m.movePage(1)
			} else {
				m.movePage(-1)
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"down", "up"},
		Description: "Field",
		Handler: func(m PreferencesModel, key string) (PreferencesModel, tea.Cmd, bool) {
			if key == "down" {
				m.moveField(1)
			} else {
				m.moveField(-1)
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"enter", " "},
		Description: "Apply",
		Handler: func(m PreferencesModel, key string) (PreferencesModel, tea.Cmd, bool) {
			f := m.currentField()
			switch {
			case f == nil:
				return m, nil, false
			case f.kind == fieldToggle:
				f.on = !f.on
				if !m.commit() {
					f.on = !f.on
				}
			case f.editable() && key == "enter":
				m.commit()
			default:
				return m, nil, false
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"left", "right"},
		Description: "Choose",
		ViewModes:   []int{pageInterface},
		Handler: func(m PreferencesModel, key string) (PreferencesModel, tea.Cmd, bool) {
			f := m.currentField()
			if f == nil || f.kind != fieldChoice {
				return m, nil, false
			}
			prev := f.choice
			if key == "right" {
				f.choice = (f.choice + 1) % len(f.choices)
			} else {
				f.choice = (f.choice - 1 + len(f.choices)) % len(f.choices)
			}
			if !m.commit() {
				f.choice = prev
			}
			return m, nil, true
		},
	})
	r.Register(KeyBinding[PreferencesModel]{
		Keys:        []string{"esc", "ctrl+c"},
		Description: "Close",
		Priority:    10,
		Handler: func(m PreferencesModel, _ string) (PreferencesModel, tea.Cmd, bool) {
			next, cmd := m.close()
			return next, cmd, true
		},
	})
	return r
}
