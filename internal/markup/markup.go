// Package markup parses the small subset of Pango markup used in exercise
// descriptions: <b>, <i>, <u> and <big>.
package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrBadMarkup = errors.New("bad markup")

// Span is a run of text sharing one set of attributes.
type Span struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Big       bool
}

type state struct {
	bold, italic, underline, big int
}

func (s *state) enter(name string, delta int) error {
	switch name {
	case "b":
		s.bold += delta
	case "i":
		s.italic += delta
	case "u":
		s.underline += delta
	case "big":
		s.big += delta
	default:
		return fmt.Errorf("tag <%s>: %w", name, ErrBadMarkup)
	}
	return nil
}

// Parse splits markup into spans. Entities are decoded.
func Parse(markup string) ([]Span, error) {
	dec := xml.NewDecoder(strings.NewReader("<markup>" + markup + "</markup>"))
	var (
		spans []Span
		st    state
		depth int
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadMarkup, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth > 1 {
				if err := st.enter(t.Name.Local, 1); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			depth--
			if depth > 0 {
				if err := st.enter(t.Name.Local, -1); err != nil {
					return nil, err
				}
			}
		case xml.CharData:
			if len(t) == 0 {
				continue
			}
			spans = append(spans, Span{
				Text:      string(t),
				Bold:      st.bold > 0,
				Italic:    st.italic > 0,
				Underline: st.underline > 0,
				Big:       st.big > 0,
			})
		}
	}
	return spans, nil
}

// Plain drops the markup, keeping the text. Malformed markup is returned as is.
func Plain(markup string) string {
	spans, err := Parse(markup)
	if err != nil {
		return markup
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Escape quotes text for inclusion in markup.
func Escape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
