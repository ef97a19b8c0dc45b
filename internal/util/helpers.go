package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadDuration = errors.New("bad duration")

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Wrap maps i onto [0, n) so that stepping past either end comes back round.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// FormatSeconds renders a duration in seconds as h:mm:ss or m:ss.
func FormatSeconds(secs int) string {
	neg := secs < 0
	if neg {
		secs = -secs
	}
	h, m, s := secs/3600, (secs/60)%60, secs%60
	out := fmt.Sprintf("%d:%02d", m, s)
	if h > 0 {
		out = fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	if neg {
		out = "-" + out
	}
	return out
}

// BoolToString stores a boolean in the settings table.
func BoolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseBoolDefault reads a stored boolean, falling back when the value is unset or malformed.
func ParseBoolDefault(value string, ok bool, fallback bool) bool {
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

// ParseIntDefault reads a stored integer, falling back when the value is unset or malformed.
func ParseIntDefault(value string, ok bool, fallback int) int {
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// ParseSeconds is the inverse of FormatSeconds. Bare numbers are seconds.
func ParseSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrBadDuration
	}
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadDuration)
	}
	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || (i > 0 && n >= 60) {
			return 0, fmt.Errorf("%q: %w", s, ErrBadDuration)
		}
		total = total*60 + n
	}
	return total, nil
}
