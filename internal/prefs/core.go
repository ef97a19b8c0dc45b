package prefs

import (
	"context"
	"strconv"

	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/util"
)

// Core holds the global operation mode of the break reminder.
type Core struct {
	prefs *Preferences
	mode  models.OperationMode
}

// LoadCore reads the stored operation mode.
func LoadCore(ctx context.Context, p *Preferences) (*Core, error) {
	v, err := p.intValue(ctx, keyOperationMode, int(models.OperationNormal))
	if err != nil {
		return nil, err
	}
	mode := models.OperationMode(v)
	if mode < models.OperationNormal || mode > models.OperationSuspended {
		mode = models.OperationNormal
	}
	return &Core{prefs: p, mode: mode}, nil
}

func (c *Core) OperationMode() models.OperationMode { return c.mode }

// SetOperationMode switches mode and returns the previous one.
func (c *Core) SetOperationMode(ctx context.Context, mode models.OperationMode) models.OperationMode {
	prev := c.mode
	c.mode = mode
	util.LogError("store operation mode", c.prefs.store.SetSetting(ctx, keyOperationMode, strconv.Itoa(int(mode))))
	return prev
}

// QuietGuard keeps the break reminder quiet while a dialog has focus, so no
// break pops up over it, and restores the user's mode afterwards.
type QuietGuard struct {
	core   *Core
	saved  models.OperationMode
	active bool
}

func NewQuietGuard(core *Core) *QuietGuard {
	return &QuietGuard{core: core, saved: core.OperationMode()}
}

// Focus forces quiet mode, remembering the mode it replaced.
func (g *QuietGuard) Focus(ctx context.Context) {
	if g.active {
		return
	}
	g.saved = g.core.SetOperationMode(ctx, models.OperationQuiet)
	g.active = true
}

// Blur restores the remembered mode.
func (g *QuietGuard) Blur(ctx context.Context) {
	if !g.active {
		return
	}
	g.core.SetOperationMode(ctx, g.saved)
	g.active = false
}

// Saved is the mode that Blur will restore.
func (g *QuietGuard) Saved() models.OperationMode { return g.saved }
