package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m ExercisesModel) View() string {
	t := CurrentTheme
	s := m.state

	alert := ansi.Wordwrap(s.alert, config.DescriptionWidth, "")
	var body string
	if m.width > 0 && m.width < config.CompactModeThreshold {
		body = lipgloss.JoinVertical(lipgloss.Left, s.picture.Text, "", alert)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, s.picture.Text, "  ", alert)
	}

	lines := []string{
		t.Header.Render("Exercises player") + t.Dim.Render("  "+m.counter()),
		"",
		body,
		"",
		m.progressLine(),
		"",
		m.buttonRow(),
		t.Dim.Render(m.keys.HelpForView(0)),
	}
	view := strings.Join(lines, "\n")
	if m.width > 0 {
		view = truncateLines(view, m.width)
	}
	return view
}

func (m ExercisesModel) counter() string {
	pos := fmt.Sprintf("%d/%d", m.seq.Snapshot().Exercise+1, m.seq.Len())
	if n := m.seq.ExerciseCount(); n > 0 {
		return fmt.Sprintf("%s  done %d of %d", pos, m.seq.ExerciseNumber(), n)
	}
	return pos
}

func (m ExercisesModel) progressLine() string {
	t := CurrentTheme
	line := m.progress.ViewAs(m.state.remaining) + " " + util.FormatSeconds(m.seq.Remaining())
	switch {
	case m.state.stopped:
		line += " " + t.Dim.Render("(stopped)")
	case m.state.paused:
		line += " " + t.Paused.Render("(paused)")
	}
	return line
}

func (m ExercisesModel) buttonRow() string {
	t := CurrentTheme
	pause := "Pause"
	if m.state.paused {
		pause = "Resume"
	}
	buttons := []string{
		t.Button.Render("◀ Back"),
		t.Button.Render(pause),
		t.Button.Render("Forward ▶"),
	}
	if m.seq.HasAudio() {
		buttons = append(buttons, t.Button.Render(fmt.Sprintf("Volume %d%%", m.seq.Volume()/10)))
	}
	buttons = append(buttons, t.Button.Render("Stop"))
	return strings.Join(buttons, " ")
}

func truncateLines(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, config.TruncationSuffix)
	}
	return strings.Join(lines, "\n")
}
