package parser

import (
	"regexp"
	"strings"
)

func isBuiltinDateFormat(key int) bool {
	switch {
	case key >= 14 && key <= 22:
		return true
	case key >= 27 && key <= 36:
		return true
	case key >= 45 && key <= 47:
		return true
	case key >= 50 && key <= 58:
		return true
	default:
		return false
	}
}

var bracketed = regexp.MustCompile(`\[.*?\]`)

// isDateFormatCode reports whether a custom number format code displays a
// date or time. Quoted text, escaped characters and [bracketed] sections are
// ignored; the remaining code must contain more date letters (ymdhs) than
// digit placeholders (0#?).
func isDateFormatCode(code string) bool {
	if code == "" || strings.EqualFold(code, "general") {
		return false
	}

	var s strings.Builder
	state := 0
	for _, c := range code {
		switch state {
		case 0:
			switch c {
			case '"':
				state = 1
			case '\\', '_', '*':
				state = 2
			default:
				s.WriteRune(c)
			}
		case 1:
			if c == '"' {
				state = 0
			}
		case 2:
			state = 0
		}
	}

	reduced := bracketed.ReplaceAllString(s.String(), "")
	// Only the first section (positive numbers) matters.
	if idx := strings.IndexByte(reduced, ';'); idx >= 0 {
		reduced = reduced[:idx]
	}

	dateCount, numCount := 0, 0
	for _, c := range strings.ToLower(reduced) {
		switch c {
		case 'y', 'm', 'd', 'h', 's':
			dateCount++
		case '0', '#', '?':
			numCount++
		}
	}
	return dateCount > numCount
}
