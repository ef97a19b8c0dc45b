// Package exercises loads the exercise registry shown by the exercises panel.
package exercises

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/restbreak/internal/models"
	"github.com/akyairhashvil/restbreak/internal/util"
	"gopkg.in/yaml.v3"
)

//go:embed data/exercises.yaml
var defaultRegistry []byte

var ErrInvalidRegistry = errors.New("invalid exercise registry")

// ValidationError points at the offending exercise.
type ValidationError struct {
	Index  int
	Title  string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("exercise %d (%q): %s %s", e.Index, e.Title, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRegistry }

// Registry is the process-wide, read-only list of exercises.
type Registry struct {
	// Dir is the search directory for relative image and audio paths.
	Dir       string
	Exercises []models.Exercise
}

type document struct {
	Exercises []models.Exercise `yaml:"exercises"`
}

// Resolve completes a relative image or audio path against the registry directory.
func (r Registry) Resolve(path string) string {
	return util.CompletePath(r.Dir, path)
}

// Load decodes and validates a registry document. dir is its search directory.
func Load(r io.Reader, dir string) (Registry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Registry{}, &ValidationError{Index: -1, Field: "exercises", Reason: "document is empty"}
		}
		return Registry{}, fmt.Errorf("decode exercises: %w", err)
	}
	if err := Validate(doc.Exercises); err != nil {
		return Registry{}, err
	}
	return Registry{Dir: dir, Exercises: doc.Exercises}, nil
}

// LoadFile loads a registry file; relative paths resolve next to it.
func LoadFile(path string) (Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return Registry{}, fmt.Errorf("open exercises: %w", err)
	}
	defer f.Close()
	return Load(f, filepath.Dir(path))
}

// Default is the registry compiled into the binary, resolving paths against dir.
func Default(dir string) (Registry, error) {
	return Load(bytes.NewReader(defaultRegistry), dir)
}

// Validate checks the assumptions the sequencer makes about its input.
func Validate(list []models.Exercise) error {
	if len(list) == 0 {
		return &ValidationError{Index: -1, Field: "exercises", Reason: "must not be empty"}
	}
	for i, ex := range list {
		if ex.Title == "" {
			return &ValidationError{Index: i, Field: "title", Reason: "must not be empty"}
		}
		if ex.Duration <= 0 {
			return &ValidationError{Index: i, Title: ex.Title, Field: "duration", Reason: "must be positive"}
		}
		if len(ex.Sequence) == 0 {
			return &ValidationError{Index: i, Title: ex.Title, Field: "sequence", Reason: "must not be empty"}
		}
		for j, img := range ex.Sequence {
			if img.Image == "" {
				return &ValidationError{Index: i, Title: ex.Title, Field: fmt.Sprintf("sequence[%d].image", j), Reason: "must not be empty"}
			}
			if img.Duration <= 0 {
				return &ValidationError{Index: i, Title: ex.Title, Field: fmt.Sprintf("sequence[%d].duration", j), Reason: "must be positive"}
			}
		}
	}
	return nil
}

// TotalDuration is the time needed to play every exercise once.
func (r Registry) TotalDuration() int {
	total := 0
	for _, ex := range r.Exercises {
		total += ex.Duration
	}
	return total
}
