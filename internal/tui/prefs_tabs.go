package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/models"
)

// Dialog pages.
const (
	pageTimers = iota
	pageInterface
)

var pageTitles = []string{"Timers", "User interface"}

type saveFunc func(ctx context.Context, store PreferenceStore, values map[string]int) error

type prefsTab struct {
	page   int
	title  string
	fields []prefField
	save   saveFunc
}

var slotChoices = []string{"Always", "When active", "Never"}

func slotChoice(flags int) int {
	switch {
	case flags&models.SlotHidden != 0:
		return 2
	case flags&models.SlotShowWhenActive != 0:
		return 1
	default:
		return 0
	}
}

func slotFlags(choice int) int {
	switch choice {
	case 1:
		return models.SlotShowWhenActive
	case 2:
		return models.SlotHidden
	default:
		return 0
	}
}

func loadTabs(ctx context.Context, store PreferenceStore) ([]prefsTab, error) {
	var tabs []prefsTab
	for _, id := range models.BreakIDs {
		tab, err := timerTab(ctx, store, id)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	general, err := generalTab(ctx, store)
	if err != nil {
		return nil, err
	}
	tabs = append(tabs, general)
	for _, v := range []struct{ view, title string }{
		{models.ViewMainWindow, "Status Window"},
		{models.ViewApplet, "Applet"},
	} {
		tab, err := timerBoxTab(ctx, store, v.view, v.title)
		if err != nil {
			return nil, err
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}

func timerTab(ctx context.Context, store PreferenceStore, id models.BreakID) (prefsTab, error) {
	tp, err := store.Timer(ctx, id)
	if err != nil {
		return prefsTab{}, fmt.Errorf("load %s: %w", id.Label(), err)
	}
	fields := []prefField{
		toggleField("enabled", "Enabled", tp.Enabled),
		durationField("limit", "Time before break", tp.Limit),
	}
	if id != models.DailyLimit {
		fields = append(fields, durationField("auto_reset", "Break duration", tp.AutoReset))
	}
	fields = append(fields, durationField("snooze", "Postpone time", tp.Snooze))
	if id == models.RestBreak {
		fields = append(fields, numberField("exercises", "Number of exercises", tp.ExercisesCount, config.MaxExercisesCount))
	}
	return prefsTab{
		page:   pageTimers,
		title:  id.Label(),
		fields: fields,
		save: func(ctx context.Context, store PreferenceStore, v map[string]int) error {
			next := tp
			next.Enabled = v["enabled"] == 1
			next.Limit = v["limit"]
			if n, ok := v["auto_reset"]; ok {
				next.AutoReset = n
			}
			next.Snooze = v["snooze"]
			if n, ok := v["exercises"]; ok {
				next.ExercisesCount = n
			}
			if err := store.SetTimer(ctx, id, next); err != nil {
				return err
			}
			tp = next
			return nil
		},
	}, nil
}

func generalTab(ctx context.Context, store PreferenceStore) (prefsTab, error) {
	mode, err := store.SoundMode(ctx)
	if err != nil {
		return prefsTab{}, fmt.Errorf("load sound mode: %w", err)
	}
	modes := []models.SoundMode{models.SoundNone, models.SoundCard, models.SoundSpeaker}
	labels := make([]string, len(modes))
	current := 0
	for i, m := range modes {
		labels[i] = m.Label()
		if m == mode {
			current = i
		}
	}
	return prefsTab{
		page:   pageInterface,
		title:  "General",
		fields: []prefField{choiceField("sound", "Sound", labels, current)},
		save: func(ctx context.Context, store PreferenceStore, v map[string]int) error {
			return store.SetSoundMode(ctx, modes[v["sound"]])
		},
	}, nil
}

func timerBoxTab(ctx context.Context, store PreferenceStore, view, title string) (prefsTab, error) {
	tb, err := store.TimerBox(ctx, view)
	if err != nil {
		return prefsTab{}, fmt.Errorf("load %s: %w", title, err)
	}
	fields := []prefField{
		toggleField("enabled", "Show "+title, tb.Enabled),
		durationField("cycle_time", "Cycle time", tb.CycleTime),
	}
	for _, id := range models.BreakIDs {
		fields = append(fields, choiceField(id.String(), id.Label(), slotChoices, slotChoice(tb.Slots[id].Flags)))
	}
	return prefsTab{
		page:   pageInterface,
		title:  title,
		fields: fields,
		save: func(ctx context.Context, store PreferenceStore, v map[string]int) error {
			next := models.TimerBoxPrefs{
				Enabled:   v["enabled"] == 1,
				CycleTime: v["cycle_time"],
				Slots:     make(map[models.BreakID]models.TimerSlot, len(tb.Slots)),
			}
			for _, id := range models.BreakIDs {
				next.Slots[id] = models.TimerSlot{Slot: tb.Slots[id].Slot, Flags: slotFlags(v[id.String()])}
			}
			return store.SetTimerBox(ctx, view, next)
		},
	}, nil
}
