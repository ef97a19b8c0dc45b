// Package sheet prints the exercise registry as a PDF handout.
package sheet

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/restbreak/internal/exercises"
	"github.com/akyairhashvil/restbreak/internal/markup"
	"github.com/akyairhashvil/restbreak/internal/util"
	"github.com/go-pdf/fpdf"
)

const (
	thumbWidth  = 30 // mm
	thumbHeight = 30
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "restbreak-exercises.pdf"

// DefaultPath places the sheet in the user's documents directory.
func DefaultPath() string {
	return filepath.Join(util.DocumentsDir(), DefaultFileName)
}

// WritePDF renders one section per exercise: title, duration, description
// and the first picture of its sequence when it can be found.
func WritePDF(w io.Writer, reg exercises.Registry) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Exercises", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Exercises")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%d exercises, %s in total", len(reg.Exercises), util.FormatSeconds(reg.TotalDuration())))
	pdf.Ln(12)

	for i, ex := range reg.Exercises {
		if pdf.GetY()+thumbHeight > 270 {
			pdf.AddPage()
		}
		top := pdf.GetY()

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s", i+1, ex.Title)))
		pdf.Ln(8)

		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("%s, %d pictures", util.FormatSeconds(ex.Duration), len(ex.Sequence)))
		pdf.Ln(7)

		left, _, _, _ := pdf.GetMargins()
		textWidth := 0.0
		if len(ex.Sequence) > 0 {
			if path := reg.Resolve(ex.Sequence[0].Image); imageUsable(path) {
				pageWidth, _ := pdf.GetPageSize()
				x := pageWidth - left - thumbWidth
				pdf.ImageOptions(path, x, top, thumbWidth, thumbHeight, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
				textWidth = x - left - 4
			}
		}

		pdf.SetFont("Arial", "", 11)
		desc := strings.TrimSpace(markup.Plain(ex.Description))
		if desc != "" {
			pdf.MultiCell(textWidth, 5, tr(desc), "", "", false)
		}
		if y := top + thumbHeight; textWidth > 0 && pdf.GetY() < y {
			pdf.SetY(y)
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write exercise sheet: %w", err)
	}
	return nil
}

// WriteFile writes the sheet to path.
func WriteFile(path string, reg exercises.Registry) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create exercise sheet: %w", err)
	}
	if err := WritePDF(f, reg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// imageUsable reports whether fpdf can embed the file.
func imageUsable(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
	default:
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
