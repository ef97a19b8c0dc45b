package tui

import (
	"fmt"
	"strconv"

	"github.com/akyairhashvil/restbreak/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
)

type fieldKind int

const (
	fieldDuration fieldKind = iota
	fieldNumber
	fieldToggle
	fieldChoice
)

// prefField is one editable row of a preferences tab.
type prefField struct {
	key   string
	label string
	kind  fieldKind

	input   textinput.Model
	saved   string
	on      bool
	choices []string
	choice  int
	max     int
}

func durationField(key, label string, secs int) prefField {
	v := util.FormatSeconds(secs)
	return prefField{key: key, label: label, kind: fieldDuration, input: newFieldInput(v), saved: v}
}

func numberField(key, label string, n, max int) prefField {
	v := strconv.Itoa(n)
	return prefField{key: key, label: label, kind: fieldNumber, input: newFieldInput(v), saved: v, max: max}
}

func toggleField(key, label string, on bool) prefField {
	return prefField{key: key, label: label, kind: fieldToggle, on: on}
}

func choiceField(key, label string, choices []string, choice int) prefField {
	return prefField{key: key, label: label, kind: fieldChoice, choices: choices, choice: util.Clamp(choice, 0, len(choices)-1)}
}

func newFieldInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 10
	ti.Width = 10
	ti.SetValue(value)
	return ti
}

func (f *prefField) markSaved() { f.saved = f.input.Value() }
func (f *prefField) revert()    { f.input.SetValue(f.saved) }

func (f prefField) editable() bool {
	return f.kind == fieldDuration || f.kind == fieldNumber
}

// value parses the field; toggles read as 0/1 and choices as their index.
func (f prefField) value() (int, error) {
	switch f.kind {
	case fieldDuration:
		return util.ParseSeconds(f.input.Value())
	case fieldNumber:
		n, err := strconv.Atoi(f.input.Value())
		if err != nil || n < 0 || (f.max > 0 && n > f.max) {
			return 0, fmt.Errorf("%s: %q is not a number between 0 and %d", f.label, f.input.Value(), f.max)
		}
		return n, nil
	case fieldToggle:
		if f.on {
			return 1, nil
		}
		return 0, nil
	default:
		return f.choice, nil
	}
}

func (f prefField) display() string {
	switch f.kind {
	case fieldToggle:
		if f.on {
			return "[x]"
		}
		return "[ ]"
	case fieldChoice:
		return "‹ " + f.choices[f.choice] + " ›"
	default:
		return f.input.View()
	}
}

// fieldValues indexes a tab's fields by key.
func fieldValues(fields []prefField) (map[string]int, error) {
	out := make(map[string]int, len(fields))
	for _, f := range fields {
		v, err := f.value()
		if err != nil {
			return nil, err
		}
		out[f.key] = v
	}
	return out, nil
}
