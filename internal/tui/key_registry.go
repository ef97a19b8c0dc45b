package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler handles a key press, reporting whether it consumed it.
type KeyHandler[M any] func(m M, key string) (M, tea.Cmd, bool)

type KeyBinding[M any] struct {
	Keys        []string
	Handler     KeyHandler[M]
	Description string
	// ViewModes restricts the binding to some pages; empty means all.
	ViewModes []int
	Priority  int
}

func (b KeyBinding[M]) AppliesToView(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

func (b KeyBinding[M]) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry[M any] struct {
	bindings []KeyBinding[M]
}

func NewHandlerRegistry[M any]() *HandlerRegistry[M] {
	return &HandlerRegistry[M]{}
}

func (r *HandlerRegistry[M]) Register(b KeyBinding[M]) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry[M]) Handle(m M, mode int, key string) (M, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesToView(mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry[M]) GetBindingsForView(mode int) []KeyBinding[M] {
	var out []KeyBinding[M]
	for _, b := range r.bindings {
		if b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry[M]) HelpForView(mode int) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.GetBindingsForView(mode) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		label := strings.Join(keyLabels(b.Keys), "/")
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"] "+b.Description)
	}
	return strings.Join(parts, " | ")
}

func keyLabels(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
