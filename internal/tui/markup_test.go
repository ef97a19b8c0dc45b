package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMarkupKeepsText(t *testing.T) {
	got := stripANSI(RenderMarkup("Turn your <b>head</b> to the <i>left</i> &amp; hold", lipgloss.NewStyle()))
	if got != "Turn your head to the left & hold" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestRenderMarkupFallsBackToRawText(t *testing.T) {
	got := stripANSI(RenderMarkup("a < b", lipgloss.NewStyle()))
	if got != "a < b" {
		t.Fatalf("expected raw fallback, got %q", got)
	}
}

func TestAlertTextEscapesTitle(t *testing.T) {
	got := stripANSI(AlertText("Arms & shoulders", "Stretch <b>slowly</b>"))
	if !strings.HasPrefix(got, "Arms & shoulders") {
		t.Fatalf("title missing: %q", got)
	}
	if !strings.Contains(got, "Stretch slowly") {
		t.Fatalf("description missing: %q", got)
	}
	if stripANSI(AlertText("Only title", "")) != "Only title" {
		t.Fatalf("expected title-only alert")
	}
}
