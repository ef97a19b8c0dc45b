// Package imaging turns exercise images into terminal pictures.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Picture is an image rendered to terminal cells.
type Picture struct {
	Text   string
	Width  int
	Height int
}

// Loader loads an image by path, optionally flipped horizontally.
type Loader interface {
	Load(path string, mirror bool) (Picture, error)
}

// FileLoader decodes PNG, JPEG and GIF files into half-block pictures of
// Width x Height cells.
type FileLoader struct {
	Width  int
	Height int
}

func (l FileLoader) Load(path string, mirror bool) (Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Picture{}, fmt.Errorf("load image %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return Picture{}, fmt.Errorf("decode image %s: %w", path, err)
	}
	return Render(img, l.Width, l.Height, mirror), nil
}

// Render samples img onto w x h cells. Each cell shows two vertically
// stacked pixels using an upper half block.
func Render(img image.Image, w, h int, mirror bool) Picture {
	grid := sample(img, w, h, mirror)
	if grid == nil {
		return Picture{}
	}
	var sb strings.Builder
	for row, cells := range grid {
		for _, c := range cells {
			style := lipgloss.NewStyle().
				Foreground(hexColor(c.top)).
				Background(hexColor(c.bottom))
			sb.WriteString(style.Render("▀"))
		}
		if row < h-1 {
			sb.WriteByte('\n')
		}
	}
	return Picture{Text: sb.String(), Width: w, Height: h}
}

type cell struct {
	top, bottom color.Color
}

// sample picks the source pixels shown in each cell by nearest neighbour.
func sample(img image.Image, w, h int, mirror bool) [][]cell {
	if w <= 0 || h <= 0 {
		return nil
	}
	b := img.Bounds()
	at := func(x, y int) color.Color {
		if mirror {
			x = w - 1 - x
		}
		return img.At(b.Min.X+x*b.Dx()/w, b.Min.Y+y*b.Dy()/(2*h))
	}
	grid := make([][]cell, h)
	for row := range grid {
		grid[row] = make([]cell, w)
		for x := range grid[row] {
			grid[row][x] = cell{top: at(x, 2*row), bottom: at(x, 2*row+1)}
		}
	}
	return grid
}

func hexColor(c color.Color) lipgloss.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return lipgloss.Color("")
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// Placeholder frames label in a w x h box, for images that could not be loaded.
func Placeholder(label string, w, h int) Picture {
	if w < 4 || h < 3 {
		return Picture{Text: label, Width: lipgloss.Width(label), Height: 1}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("244")).
		Width(w-2).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center)
	return Picture{Text: box.Render(label), Width: w, Height: h}
}

// Cache memoizes a Loader. Exercise images are immutable, so every image
// is decoded once per process.
type Cache struct {
	loader Loader
	items  map[cacheKey]Picture
}

type cacheKey struct {
	path   string
	mirror bool
}

func NewCache(l Loader) *Cache {
	return &Cache{loader: l, items: make(map[cacheKey]Picture)}
}

func (c *Cache) Load(path string, mirror bool) (Picture, error) {
	key := cacheKey{path, mirror}
	if p, ok := c.items[key]; ok {
		return p, nil
	}
	p, err := c.loader.Load(path, mirror)
	if err != nil {
		return Picture{}, err
	}
	c.items[key] = p
	return p, nil
}
