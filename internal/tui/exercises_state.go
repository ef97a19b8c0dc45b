package tui

import (
	"path/filepath"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/imaging"
	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/util"
)

// panelState is what the sequencer shows. It is shared by pointer between
// the sequencer and every copy of the ExercisesModel.
type panelState struct {
	images  imaging.Loader
	resolve func(string) string

	exercise  models.Exercise
	alert     string
	image     models.Image
	picture   imaging.Picture
	remaining float64
	paused    bool
	stopped   bool
	// gen is bumped on every stop so the previous heartbeat chain dies.
	gen int
}

func newPanelState(images imaging.Loader, resolve func(string) string) *panelState {
	if resolve == nil {
		resolve = func(p string) string { return p }
	}
	return &panelState{images: images, resolve: resolve}
}

func (s *panelState) ShowExercise(ex models.Exercise) {
	s.exercise = ex
	s.alert = AlertText(ex.Title, ex.Description)
}

func (s *panelState) ShowImage(img models.Image) {
	s.image = img
	if s.images == nil {
		s.picture = imaging.Placeholder(filepath.Base(img.Image), config.PictureWidth, config.PictureHeight)
		return
	}
	pic, err := s.images.Load(s.resolve(img.Image), img.MirrorX)
	if err != nil {
		util.LogError("show exercise image", err)
		pic = imaging.Placeholder(filepath.Base(img.Image), config.PictureWidth, config.PictureHeight)
	}
	s.picture = pic
}

func (s *panelState) stop() {
	s.stopped = true
	s.gen++
}

func (s *panelState) SetProgress(remaining float64) { s.remaining = remaining }
func (s *panelState) SetPaused(paused bool)         { s.paused = paused }
