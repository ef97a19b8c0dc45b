package config

// Layout constants.
const (
	// PictureWidth is the exercise picture width in cells.
	PictureWidth = 32

	// PictureHeight is the exercise picture height in cells (two pixels per cell).
	PictureHeight = 16

	// DescriptionWidth is the wrap width of the exercise description.
	DescriptionWidth = 40

	// CompactModeThreshold stacks the panel vertically below this width.
	CompactModeThreshold = 80

	// ProgressWidth is the width of the remaining-time bar.
	ProgressWidth = 30
)

// Input constraints.
const (
	// MaxSecondsInput bounds numeric fields in the preferences dialog.
	MaxSecondsInput = 24 * 60 * 60

	// MaxExercisesCount bounds the exercises-per-break field.
	MaxExercisesCount = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
