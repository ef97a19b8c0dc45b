package tui

import (
	"context"

	"github.com/akyairhashvil/restbreak/internal/models"
)

// PreferenceStore defines the persistence methods the preferences dialog requires.
type PreferenceStore interface {
	Timer(ctx context.Context, id models.BreakID) (models.TimerPrefs, error)
	SetTimer(ctx context.Context, id models.BreakID, tp models.TimerPrefs) error

	SoundMode(ctx context.Context) (models.SoundMode, error)
	SetSoundMode(ctx context.Context, mode models.SoundMode) error

	TimerBox(ctx context.Context, view string) (models.TimerBoxPrefs, error)
	SetTimerBox(ctx context.Context, view string, tb models.TimerBoxPrefs) error
}

// FocusGuard quiets the break reminder while the dialog has focus.
type FocusGuard interface {
	Focus(ctx context.Context)
	Blur(ctx context.Context)
}
