package contragent

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperCaser is Unicode-aware so Cyrillic names fold the same way the
// database stores them.
var upperCaser = cases.Upper(language.Und)

// Normalize trims and uppercases a free-form identity field.
// Empty input stays empty.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return upperCaser.String(s)
}

// FullName returns the canonical search key for a person: the uppercase
// first+middle+last concatenation. The order is significant; it is the
// exact substring stored inside a link's search name.
func FullName(firstName, middleName, lastName string) string {
	return Normalize(firstName) + Normalize(middleName) + Normalize(lastName)
}

// SearchName concatenates normalized parts in order, skipping nothing.
// Used both when storing a link's search name and when building the
// employee search string, so the two sides always agree.
func SearchName(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(Normalize(p))
	}
	return b.String()
}
