package tui

import (
	"fmt"
	"strings"
)

func (m PreferencesModel) View() string {
	t := CurrentTheme
	cur := m.currentTab()

	var pages []string
	for i, title := range pageTitles {
		if i == cur.page {
			pages = append(pages, t.ActiveTab.Render(title))
		} else {
			pages = append(pages, t.Tab.Render(title))
		}
	}
	var tabs []string
	for i, tab := range m.tabs {
		if tab.page != cur.page {
			continue
		}
		if i == m.tab {
			tabs = append(tabs, t.ActiveTab.Render(tab.title))
		} else {
			tabs = append(tabs, t.Tab.Render(tab.title))
		}
	}

	labelWidth := 0
	for _, f := range cur.fields {
		if len(f.label) > labelWidth {
			labelWidth = len(f.label)
		}
	}
	var rows []string
	for i, f := range cur.fields {
		label := fmt.Sprintf("%-*s", labelWidth, f.label)
		cursor := "  "
		if i == m.field {
			cursor = t.Focused.Render("> ")
			label = t.Focused.Render(label)
		}
		rows = append(rows, cursor+label+"  "+f.display())
	}

	lines := []string{
		t.Header.Render("Preferences") + t.Dim.Render("  "+VersionLabel()),
		strings.Join(pages, " "),
		strings.Join(tabs, " "),
		"",
		strings.Join(rows, "\n"),
		"",
	}
	switch {
	case m.err != "":
		lines = append(lines, t.Error.Render(m.err))
	case m.status != "":
		lines = append(lines, t.Dim.Render(m.status))
	default:
		lines = append(lines, "")
	}
	lines = append(lines, t.Dim.Render(m.keys.HelpForView(cur.page)))
	view := strings.Join(lines, "\n")
	if w := m.width - t.Base.GetHorizontalFrameSize(); w > 0 {
		view = truncateLines(view, w)
	}
	return t.Base.Render(view)
}
