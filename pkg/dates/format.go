package dates

import (
	"strconv"
	"strings"
	"time"
)

// DefaultPattern is the display pattern used when none is given.
const DefaultPattern = "MMM dd, yyyy"

// Format renders t using a small format-pattern language: runs of the same
// letter form a token (yyyy, MMM, dd, HH, mm, ...), anything else is
// copied through, and single-quoted sections are literal. Unknown tokens
// pass through unchanged.
func Format(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			j := i + 1
			for j < len(pattern) && pattern[j] != '\'' {
				b.WriteByte(pattern[j])
				j++
			}
			i = j + 1
			continue
		}

		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		b.WriteString(formatToken(t, pattern[i:j]))
		i = j
	}
	return b.String()
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func formatToken(t time.Time, token string) string {
	tl := t.Local()
	switch token {
	case "yyyy":
		return tl.Format("2006")
	case "yy":
		return tl.Format("06")
	case "MMMM":
		return tl.Format("January")
	case "MMM":
		return tl.Format("Jan")
	case "MM":
		return tl.Format("01")
	case "M":
		return strconv.Itoa(int(tl.Month()))
	case "dd":
		return tl.Format("02")
	case "d":
		return strconv.Itoa(tl.Day())
	case "EEEE":
		return tl.Format("Monday")
	case "EEE":
		return tl.Format("Mon")
	case "HH":
		return tl.Format("15")
	case "H":
		return strconv.Itoa(tl.Hour())
	case "hh":
		return tl.Format("03")
	case "h":
		return tl.Format("3")
	case "mm":
		return tl.Format("04")
	case "m":
		return strconv.Itoa(tl.Minute())
	case "a":
		return tl.Format("PM")
	default:
		return token
	}
}
