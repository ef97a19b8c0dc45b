// Package prefs reads and writes the break reminder's preferences on top of
// the configuration store.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/database"
	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/util"
)

var ErrInvalidValue = errors.New("invalid preference value")

// Preferences is a typed view over the configuration store. Unset keys read as defaults.
type Preferences struct {
	store database.SettingsRepository
}

func New(store database.SettingsRepository) *Preferences {
	return &Preferences{store: store}
}

func timerKey(id models.BreakID, field string) string {
	return "timers/" + id.String() + "/" + field
}

func timerBoxKey(view, field string) string {
	return "gui/" + view + "/" + field
}

const (
	keySoundMode     = "sound/mode"
	keySpeakVolume   = "gui/exercises/speak_volume"
	keyOperationMode = "core/operation_mode"
)

// DefaultTimer is the out-of-the-box configuration of a break timer.
func DefaultTimer(id models.BreakID) models.TimerPrefs {
	switch id {
	case models.MicroBreak:
		return models.TimerPrefs{Enabled: true, Limit: config.MicroBreakLimit, AutoReset: config.MicroBreakAutoReset, Snooze: 150, MaxPreludes: config.DefaultMaxPreludes}
	case models.RestBreak:
		return models.TimerPrefs{Enabled: true, Limit: config.RestBreakLimit, AutoReset: config.RestBreakAutoReset, Snooze: config.DefaultSnooze, MaxPreludes: config.DefaultMaxPreludes, ExercisesCount: config.DefaultExercises}
	case models.DailyLimit:
		return models.TimerPrefs{Enabled: true, Limit: config.DailyLimitSeconds, Snooze: 20 * 60, MaxPreludes: config.DefaultMaxPreludes}
	default:
		return models.TimerPrefs{}
	}
}

// ValidateTimer rejects settings a timer cannot run with.
func ValidateTimer(id models.BreakID, tp models.TimerPrefs) error {
	switch {
	case tp.Limit <= 0 || tp.Limit > config.MaxSecondsInput:
		return fmt.Errorf("%s limit %d: %w", id.Label(), tp.Limit, ErrInvalidValue)
	case tp.AutoReset < 0 || tp.AutoReset > config.MaxSecondsInput:
		return fmt.Errorf("%s auto-reset %d: %w", id.Label(), tp.AutoReset, ErrInvalidValue)
	case tp.Snooze < 0 || tp.Snooze > config.MaxSecondsInput:
		return fmt.Errorf("%s snooze %d: %w", id.Label(), tp.Snooze, ErrInvalidValue)
	case tp.MaxPreludes < 0:
		return fmt.Errorf("%s preludes %d: %w", id.Label(), tp.MaxPreludes, ErrInvalidValue)
	case tp.ExercisesCount < 0 || tp.ExercisesCount > config.MaxExercisesCount:
		return fmt.Errorf("%s exercises %d: %w", id.Label(), tp.ExercisesCount, ErrInvalidValue)
	case id != models.RestBreak && tp.ExercisesCount != 0:
		return fmt.Errorf("%s has no exercises: %w", id.Label(), ErrInvalidValue)
	}
	return nil
}

// Timer reads one break timer's settings.
func (p *Preferences) Timer(ctx context.Context, id models.BreakID) (models.TimerPrefs, error) {
	def := DefaultTimer(id)
	var err error
	tp := models.TimerPrefs{}
	if tp.Enabled, err = p.boolValue(ctx, timerKey(id, "enabled"), def.Enabled); err != nil {
		return def, err
	}
	ints := []struct {
		field string
		dst   *int
		def   int
	}{
		{"limit", &tp.Limit, def.Limit},
		{"auto_reset", &tp.AutoReset, def.AutoReset},
		{"snooze", &tp.Snooze, def.Snooze},
		{"max_preludes", &tp.MaxPreludes, def.MaxPreludes},
		{"exercises", &tp.ExercisesCount, def.ExercisesCount},
	}
	for _, f := range ints {
		if *f.dst, err = p.intValue(ctx, timerKey(id, f.field), f.def); err != nil {
			return def, err
		}
	}
	return tp, nil
}

// SetTimer validates and stores one break timer's settings.
func (p *Preferences) SetTimer(ctx context.Context, id models.BreakID, tp models.TimerPrefs) error {
	if err := ValidateTimer(id, tp); err != nil {
		return err
	}
	values := map[string]string{
		timerKey(id, "enabled"):      util.BoolToString(tp.Enabled),
		timerKey(id, "limit"):        strconv.Itoa(tp.Limit),
		timerKey(id, "auto_reset"):   strconv.Itoa(tp.AutoReset),
		timerKey(id, "snooze"):       strconv.Itoa(tp.Snooze),
		timerKey(id, "max_preludes"): strconv.Itoa(tp.MaxPreludes),
		timerKey(id, "exercises"):    strconv.Itoa(tp.ExercisesCount),
	}
	return p.setAll(ctx, values)
}

// ExercisesCount is how many exercises a rest break plays before stopping.
func (p *Preferences) ExercisesCount(ctx context.Context) (int, error) {
	tp, err := p.Timer(ctx, models.RestBreak)
	return tp.ExercisesCount, err
}

// SoundMode reads how sounds are played.
func (p *Preferences) SoundMode(ctx context.Context) (models.SoundMode, error) {
	v, ok, err := p.store.GetSetting(ctx, keySoundMode)
	if err != nil || !ok {
		return models.SoundCard, err
	}
	mode, known := models.ParseSoundMode(v)
	if !known {
		return models.SoundCard, nil
	}
	return mode, nil
}

func (p *Preferences) SetSoundMode(ctx context.Context, mode models.SoundMode) error {
	return p.store.SetSetting(ctx, keySoundMode, mode.String())
}

// DefaultTimerBox is the out-of-the-box layout of a status view.
func DefaultTimerBox(view string) models.TimerBoxPrefs {
	slots := map[models.BreakID]models.TimerSlot{}
	for i, id := range models.BreakIDs {
		slots[id] = models.TimerSlot{Slot: i}
	}
	if view == models.ViewApplet {
		// The applet is small; the daily limit only shows while it is running.
		slots[models.DailyLimit] = models.TimerSlot{Slot: 2, Flags: models.SlotShowWhenActive}
	}
	return models.TimerBoxPrefs{Enabled: true, CycleTime: config.TimerBoxCycleTime, Slots: slots}
}

// TimerBox reads the layout of a status view.
func (p *Preferences) TimerBox(ctx context.Context, view string) (models.TimerBoxPrefs, error) {
	def := DefaultTimerBox(view)
	out := models.TimerBoxPrefs{Slots: map[models.BreakID]models.TimerSlot{}}
	var err error
	if out.Enabled, err = p.boolValue(ctx, timerBoxKey(view, "enabled"), def.Enabled); err != nil {
		return def, err
	}
	if out.CycleTime, err = p.intValue(ctx, timerBoxKey(view, "cycle_time"), def.CycleTime); err != nil {
		return def, err
	}
	for _, id := range models.BreakIDs {
		var slot models.TimerSlot
		if slot.Slot, err = p.intValue(ctx, timerBoxKey(view, id.String()+"/slot"), def.Slots[id].Slot); err != nil {
			return def, err
		}
		if slot.Flags, err = p.intValue(ctx, timerBoxKey(view, id.String()+"/flags"), def.Slots[id].Flags); err != nil {
			return def, err
		}
		out.Slots[id] = slot
	}
	return out, nil
}

// SetTimerBox stores the layout of a status view.
func (p *Preferences) SetTimerBox(ctx context.Context, view string, tb models.TimerBoxPrefs) error {
	if tb.CycleTime <= 0 {
		return fmt.Errorf("%s cycle time %d: %w", view, tb.CycleTime, ErrInvalidValue)
	}
	values := map[string]string{
		timerBoxKey(view, "enabled"):    util.BoolToString(tb.Enabled),
		timerBoxKey(view, "cycle_time"): strconv.Itoa(tb.CycleTime),
	}
	for id, slot := range tb.Slots {
		if slot.Slot < 0 || slot.Slot >= len(models.BreakIDs) {
			return fmt.Errorf("%s %s slot %d: %w", view, id.Label(), slot.Slot, ErrInvalidValue)
		}
		values[timerBoxKey(view, id.String()+"/slot")] = strconv.Itoa(slot.Slot)
		values[timerBoxKey(view, id.String()+"/flags")] = strconv.Itoa(slot.Flags)
	}
	return p.setAll(ctx, values)
}

// SpokenVolume reads the narration volume, snapped to a known step.
func (p *Preferences) SpokenVolume(ctx context.Context) (int, error) {
	v, err := p.intValue(ctx, keySpeakVolume, config.DefaultSpeakVolume)
	if err != nil {
		return config.DefaultSpeakVolume, err
	}
	for _, step := range config.SpeakVolumes {
		if step == v {
			return v, nil
		}
	}
	return config.DefaultSpeakVolume, nil
}

func (p *Preferences) SetSpokenVolume(ctx context.Context, volume int) error {
	return p.store.SetSetting(ctx, keySpeakVolume, strconv.Itoa(util.Clamp(volume, 0, 1000)))
}

// Reset removes every stored value under prefix so it reads as default again.
func (p *Preferences) Reset(ctx context.Context, prefix string) error {
	values, err := p.store.Settings(ctx, prefix)
	if err != nil {
		return err
	}
	for key := range values {
		if err := p.store.DeleteSetting(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preferences) intValue(ctx context.Context, key string, def int) (int, error) {
	v, ok, err := p.store.GetSetting(ctx, key)
	if err != nil {
		return def, err
	}
	return util.ParseIntDefault(v, ok, def), nil
}

func (p *Preferences) boolValue(ctx context.Context, key string, def bool) (bool, error) {
	v, ok, err := p.store.GetSetting(ctx, key)
	if err != nil {
		return def, err
	}
	return util.ParseBoolDefault(v, ok, def), nil
}

func (p *Preferences) setAll(ctx context.Context, values map[string]string) error {
	return p.store.SetSettings(ctx, values)
}
