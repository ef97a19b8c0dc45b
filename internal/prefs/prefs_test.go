package prefs

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/database"
	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPrefs(t *testing.T) (*Preferences, *database.Database) {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(db), db
}

type failingStore struct {
	err error
}

func (f failingStore) GetSetting(context.Context, string) (string, bool, error) {
	return "", false, f.err
}
func (f failingStore) SetSetting(context.Context, string, string) error     { return f.err }
func (f failingStore) SetSettings(context.Context, map[string]string) error { return f.err }
func (f failingStore) DeleteSetting(context.Context, string) error          { return f.err }
func (f failingStore) Settings(context.Context, string) (map[string]string, error) {
	return nil, f.err
}

func TestTimerDefaults(t *testing.T) {
	p, _ := setupPrefs(t)
	ctx := context.Background()
	for _, id := range models.BreakIDs {
		tp, err := p.Timer(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, DefaultTimer(id), tp, id.String())
		assert.NoError(t, ValidateTimer(id, tp), id.String())
	}
	n, err := p.ExercisesCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultExercises, n)
}

func TestTimerRoundTrip(t *testing.T) {
	p, db := setupPrefs(t)
	ctx := context.Background()
	want := models.TimerPrefs{Enabled: false, Limit: 3000, AutoReset: 600, Snooze: 120, MaxPreludes: 2, ExercisesCount: 5}
	require.NoError(t, p.SetTimer(ctx, models.RestBreak, want))

	got, err := p.Timer(ctx, models.RestBreak)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, ok, err := db.GetSetting(ctx, "timers/rest_break/limit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "3000", raw)
}

func TestSetTimerValidates(t *testing.T) {
	p, _ := setupPrefs(t)
	ctx := context.Background()
	bad := []struct {
		id models.BreakID
		tp models.TimerPrefs
	}{
		{models.MicroBreak, models.TimerPrefs{Limit: 0}},
		{models.MicroBreak, models.TimerPrefs{Limit: 10, AutoReset: -1}},
		{models.MicroBreak, models.TimerPrefs{Limit: 10, Snooze: -5}},
		{models.MicroBreak, models.TimerPrefs{Limit: 10, ExercisesCount: 2}},
		{models.RestBreak, models.TimerPrefs{Limit: 10, ExercisesCount: config.MaxExercisesCount + 1}},
		{models.DailyLimit, models.TimerPrefs{Limit: config.MaxSecondsInput + 1}},
	}
	for _, c := range bad {
		err := p.SetTimer(ctx, c.id, c.tp)
		assert.True(t, errors.Is(err, ErrInvalidValue), "%s %+v: %v", c.id, c.tp, err)
	}
}

func TestMalformedStoredValueFallsBack(t *testing.T) {
	p, db := setupPrefs(t)
	ctx := context.Background()
	require.NoError(t, db.SetSetting(ctx, "timers/micro_pause/limit", "soon"))
	tp, err := p.Timer(ctx, models.MicroBreak)
	require.NoError(t, err)
	assert.Equal(t, config.MicroBreakLimit, tp.Limit)
}

func TestSoundMode(t *testing.T) {
	p, db := setupPrefs(t)
	ctx := context.Background()
	mode, err := p.SoundMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SoundCard, mode)

	require.NoError(t, p.SetSoundMode(ctx, models.SoundSpeaker))
	mode, err = p.SoundMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SoundSpeaker, mode)

	require.NoError(t, db.SetSetting(ctx, "sound/mode", "kazoo"))
	mode, err = p.SoundMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SoundCard, mode)
}

func TestTimerBox(t *testing.T) {
	p, _ := setupPrefs(t)
	ctx := context.Background()

	applet, err := p.TimerBox(ctx, models.ViewApplet)
	require.NoError(t, err)
	assert.Equal(t, models.SlotShowWhenActive, applet.Slots[models.DailyLimit].Flags)

	main, err := p.TimerBox(ctx, models.ViewMainWindow)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimerBox(models.ViewMainWindow), main)

	main.CycleTime = 5
	main.Slots[models.MicroBreak] = models.TimerSlot{Slot: 2, Flags: models.SlotHidden}
	require.NoError(t, p.SetTimerBox(ctx, models.ViewMainWindow, main))
	got, err := p.TimerBox(ctx, models.ViewMainWindow)
	require.NoError(t, err)
	assert.Equal(t, main, got)

	main.CycleTime = 0
	assert.ErrorIs(t, p.SetTimerBox(ctx, models.ViewMainWindow, main), ErrInvalidValue)
	main.CycleTime = 5
	main.Slots[models.RestBreak] = models.TimerSlot{Slot: 7}
	assert.ErrorIs(t, p.SetTimerBox(ctx, models.ViewMainWindow, main), ErrInvalidValue)
}

func TestSpokenVolume(t *testing.T) {
	p, db := setupPrefs(t)
	ctx := context.Background()
	v, err := p.SpokenVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSpeakVolume, v)

	require.NoError(t, p.SetSpokenVolume(ctx, 250))
	v, err = p.SpokenVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, v)

	require.NoError(t, db.SetSetting(ctx, "gui/exercises/speak_volume", "333"))
	v, err = p.SpokenVolume(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSpeakVolume, v)
}

func TestResetPrefix(t *testing.T) {
	p, _ := setupPrefs(t)
	ctx := context.Background()
	require.NoError(t, p.SetTimer(ctx, models.MicroBreak, models.TimerPrefs{Limit: 99}))
	require.NoError(t, p.SetSoundMode(ctx, models.SoundNone))
	require.NoError(t, p.Reset(ctx, "timers/"))

	tp, err := p.Timer(ctx, models.MicroBreak)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimer(models.MicroBreak), tp)
	mode, err := p.SoundMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SoundNone, mode)
}

func TestStoreErrorsPropagate(t *testing.T) {
	boom := errors.New("disk on fire")
	p := New(failingStore{err: boom})
	ctx := context.Background()

	tp, err := p.Timer(ctx, models.RestBreak)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, DefaultTimer(models.RestBreak), tp)
	_, err = p.SoundMode(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = p.TimerBox(ctx, models.ViewApplet)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, p.SetTimer(ctx, models.RestBreak, DefaultTimer(models.RestBreak)), boom)
	assert.ErrorIs(t, p.Reset(ctx, "timers/"), boom)
	_, err = LoadCore(ctx, p)
	assert.ErrorIs(t, err, boom)
}
