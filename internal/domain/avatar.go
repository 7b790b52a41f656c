package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var avatarColors = []string{
	"#3b82f6", // blue
	"#a855f7", // purple
	"#ec4899", // pink
	"#ef4444", // red
	"#f97316", // orange
	"#22c55e", // green
	"#14b8a6", // teal
	"#06b6d4", // cyan
	"#6366f1", // indigo
	"#f43f5e", // rose
}

// Initials returns up to two upper-cased initials: first and last word.
func Initials(fullName string) string {
	names := strings.Fields(fullName)
	switch len(names) {
	case 0:
		return "?"
	case 1:
		return firstUpper(names[0])
	}
	return firstUpper(names[0]) + firstUpper(names[len(names)-1])
}

// AvatarColor picks a stable background color from the sum of the name's code points.
func AvatarColor(fullName string) string {
	sum := 0
	for _, r := range fullName {
		sum += int(r)
	}
	return avatarColors[sum%len(avatarColors)]
}

func firstUpper(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
