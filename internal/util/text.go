package util

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases s, strips accents and collapses every run of
// non-alphanumeric characters into one hyphen.
func Slugify(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	words := strings.FieldsFunc(strings.ToLower(folded), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})

	return strings.Join(words, "-")
}

// FormatBytes renders a size with one decimal in binary units, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const units = "KMGTPE"
	if n < 1024 {
		return strconv.FormatInt(n, 10) + " B"
	}

	value, exp := float64(n)/1024, 0
	for value >= 1024 && exp < len(units)-1 {
		value /= 1024
		exp++
	}

	return strconv.FormatFloat(value, 'f', 1, 64) + " " + string(units[exp]) + "B"
}
