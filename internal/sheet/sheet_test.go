package sheet

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/restbreak/internal/exercises"
	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "neck.png"))
	reg := exercises.Registry{
		Dir: dir,
		Exercises: []models.Exercise{
			testutil.NewExercise("Neck").WithDescription("Turn your <b>head</b> slowly…").WithImage("neck.png", 5).Build(),
			testutil.NewExercise("Eyes").WithImage("missing.png", 5).Build(),
			testutil.NewExercise("Hands").WithDescription("").Build(),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, reg))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is not a PDF")
	assert.Greater(t, buf.Len(), 500)
}

func TestWritePDFDefaultRegistry(t *testing.T) {
	reg, err := exercises.Default(t.TempDir())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, reg))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "sheet.pdf")
	reg := exercises.Registry{Exercises: testutil.Exercises(2, 30)}
	require.NoError(t, WriteFile(path, reg))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestImageUsable(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	assert.True(t, imageUsable(filepath.Join(dir, "a.png")))
	assert.False(t, imageUsable(filepath.Join(dir, "b.png")))
	assert.False(t, imageUsable(filepath.Join(dir, "a.svg")))
	assert.False(t, imageUsable(dir))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/docs")
	assert.Equal(t, filepath.Join("/docs", DefaultFileName), DefaultPath())
}
