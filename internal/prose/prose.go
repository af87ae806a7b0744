// Package prose holds the small string helpers every assembler leans on:
// ordinals, hyphen-aware title casing and Oxford-comma joins.
package prose

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// Ordinal formats n as 1st, 2nd, 3rd, 4th... with 11th, 12th and 13th
// taking "th" regardless of the last digit.
func Ordinal(n int) string {
	// Negated in uint64 so math.MinInt keeps its magnitude.
	u := uint64(n)
	if n < 0 {
		u = -u
	}

	suffix := "th"
	switch u % 100 {
	case 11, 12, 13:
	default:
		switch u % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// TitleCase capitalizes each hyphen-separated segment: "half-ELF" -> "Half-Elf".
func TitleCase(s string) string {
	segments := strings.Split(s, "-")
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(segment)
		segments[i] = upper.String(segment[:size]) + lower.String(segment[size:])
	}
	return strings.Join(segments, "-")
}

// JoinConjunct joins items into prose. The conjunction is used as a prefix
// of the last item, so callers pass it with its trailing space ("or ").
//
//	["a"]           -> "a"
//	["a", "b"]      -> "a or b"
//	["a", "b", "c"] -> "a, b, or c"
//
// It reports false when items is empty.
func JoinConjunct(items []string, sep, conj string) (string, bool) {
	switch len(items) {
	case 0:
		return "", false
	case 1:
		return items[0], true
	case 2:
		return items[0] + " " + conj + items[1], true
	}

	last := len(items) - 1
	return strings.Join(items[:last], sep) + sep + conj + items[last], true
}
