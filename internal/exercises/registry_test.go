package exercises

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryIsValid(t *testing.T) {
	reg, err := Default("/usr/share/restbreak/exercises")
	require.NoError(t, err)
	require.NotEmpty(t, reg.Exercises)
	for _, ex := range reg.Exercises {
		assert.NotEmpty(t, ex.Title)
		assert.NotEmpty(t, ex.Sequence, ex.Title)
	}
	assert.Equal(t, filepath.Join("/usr/share/restbreak/exercises", "neck-1.png"), reg.Resolve("neck-1.png"))
	assert.Greater(t, reg.TotalDuration(), 0)
}

func TestDefaultRegistryHasMirroredImage(t *testing.T) {
	reg, err := Default("")
	require.NoError(t, err)
	found := false
	for _, ex := range reg.Exercises {
		for _, img := range ex.Sequence {
			found = found || img.MirrorX
		}
	}
	assert.True(t, found, "expected at least one mirrored image")
}

func TestLoadParsesFields(t *testing.T) {
	doc := `
exercises:
  - title: Reach
    description: "<b>Up</b>"
    audio: reach.mp3
    duration: 3
    sequence:
      - image: a.png
        duration: 2
      - image: b.png
        duration: 1
        mirror_x: true
`
	reg, err := Load(strings.NewReader(doc), "/ex")
	require.NoError(t, err)
	require.Len(t, reg.Exercises, 1)
	ex := reg.Exercises[0]
	assert.Equal(t, "Reach", ex.Title)
	assert.Equal(t, "reach.mp3", ex.Audio)
	assert.Equal(t, 3, ex.Duration)
	require.Len(t, ex.Sequence, 2)
	assert.True(t, ex.Sequence[1].MirrorX)
	assert.Equal(t, "/ex", reg.Dir)
}

func TestLoadValidation(t *testing.T) {
	cases := map[string]string{
		"empty list":     "exercises: []\n",
		"zero duration":  "exercises:\n  - title: A\n    duration: 0\n    sequence:\n      - image: a.png\n        duration: 1\n",
		"no images":      "exercises:\n  - title: A\n    duration: 3\n",
		"image duration": "exercises:\n  - title: A\n    duration: 3\n    sequence:\n      - image: a.png\n        duration: 0\n",
		"image name":     "exercises:\n  - title: A\n    duration: 3\n    sequence:\n      - duration: 1\n",
		"title":          "exercises:\n  - duration: 3\n    sequence:\n      - image: a.png\n        duration: 1\n",
		"empty document": "",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc), "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRegistry), "got %v", err)
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	doc := "exercises:\n  - title: A\n    length: 3\n"
	_, err := Load(strings.NewReader(doc), "")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidRegistry))
}

func TestLoadFileResolvesNextToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	doc := "exercises:\n  - title: A\n    duration: 3\n    sequence:\n      - image: a.png\n        duration: 1\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a.png"), reg.Resolve("a.png"))
	assert.Equal(t, "/abs/b.png", reg.Resolve("/abs/b.png"))
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Index: 2, Title: "Neck", Field: "duration", Reason: "must be positive"}
	assert.Equal(t, `exercise 2 ("Neck"): duration must be positive`, err.Error())
}
