package testutil

import (
	"fmt"

	"github.com/akyairhashvil/restbreak/internal/models"
)

// ExerciseBuilder provides fluent API for creating test exercises.
type ExerciseBuilder struct {
	exercise models.Exercise
}

func NewExercise(title string) *ExerciseBuilder {
	return &ExerciseBuilder{
		exercise: models.Exercise{
			Title:       title,
			Description: "Test exercise " + title,
			Duration:    10,
		},
	}
}

func (b *ExerciseBuilder) WithDuration(secs int) *ExerciseBuilder {
	b.exercise.Duration = secs
	return b
}

func (b *ExerciseBuilder) WithDescription(d string) *ExerciseBuilder {
	b.exercise.Description = d
	return b
}

func (b *ExerciseBuilder) WithAudio(path string) *ExerciseBuilder {
	b.exercise.Audio = path
	return b
}

// WithImage appends an image shown for secs seconds.
func (b *ExerciseBuilder) WithImage(name string, secs int) *ExerciseBuilder {
	b.exercise.Sequence = append(b.exercise.Sequence, models.Image{Image: name, Duration: secs})
	return b
}

// WithMirroredImage appends a horizontally flipped image.
func (b *ExerciseBuilder) WithMirroredImage(name string, secs int) *ExerciseBuilder {
	b.exercise.Sequence = append(b.exercise.Sequence, models.Image{Image: name, Duration: secs, MirrorX: true})
	return b
}

func (b *ExerciseBuilder) Build() models.Exercise {
	if len(b.exercise.Sequence) == 0 {
		b.exercise.Sequence = []models.Image{{Image: b.exercise.Title + ".png", Duration: b.exercise.Duration}}
	}
	return b.exercise
}

// Exercises builds n single-image exercises named ex0..ex(n-1).
func Exercises(n, duration int) []models.Exercise {
	out := make([]models.Exercise, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, NewExercise(fmt.Sprintf("ex%d", i)).WithDuration(duration).Build())
	}
	return out
}
