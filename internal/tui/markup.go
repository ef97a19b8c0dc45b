package tui

import (
	"strings"

	"github.com/akyairhashvil/restbreak/internal/markup"
	"github.com/akyairhashvil/restbreak/internal/util"
	"github.com/charmbracelet/lipgloss"
)

func spanStyle(base lipgloss.Style, s markup.Span) lipgloss.Style {
	st := base
	if s.Bold || s.Big {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}

// RenderMarkup styles exercise markup with base as the plain style. Malformed
// markup is shown as raw text.
func RenderMarkup(text string, base lipgloss.Style) string {
	spans, err := markup.Parse(text)
	if err != nil {
		util.LogError("render markup", err)
		return base.Render(text)
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(spanStyle(base, s).Render(s.Text))
	}
	return b.String()
}

// AlertText is an exercise's title and description, the way the panel shows them.
func AlertText(title, description string) string {
	t := CurrentTheme
	head := RenderMarkup("<big><b>"+markup.Escape(title)+"</b></big>", t.Title)
	if description == "" {
		return head
	}
	return head + "\n\n" + RenderMarkup(description, t.Body)
}
