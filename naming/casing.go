package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// separators are the characters that split words in vendor keys and values.
var separators = regexp.MustCompile(`[_\-.+]+`)

// CamelCase replaces separator runs with spaces, title-cases every word,
// drops whitespace and then lower- or upper-cases the first character.
func CamelCase(text string, startLower bool) string {
	spaced := separators.ReplaceAllString(text, " ")
	joined := strings.Join(strings.Fields(Title(spaced)), "")
	if startLower {
		return LowerFirst(joined)
	}
	return UpperFirst(joined)
}

// Title upper-cases every letter that follows a non-letter and lower-cases
// the rest, so a letter after a digit starts a new word: "arm64e" -> "Arm64E".
func Title(text string) string {
	caser := cases.Title(language.Und)
	var sb strings.Builder
	start := 0
	prevLetter := false
	for i, r := range text {
		letter := unicode.IsLetter(r)
		if letter && !prevLetter && i > start {
			sb.WriteString(caser.String(text[start:i]))
			start = i
		}
		prevLetter = letter
	}
	sb.WriteString(caser.String(text[start:]))
	return sb.String()
}

// SplitKey splits a key on separator runs, dropping empty tokens.
func SplitKey(key string) []string {
	parts := separators.Split(key, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = fn(runes[0])
	return string(runes)
}
