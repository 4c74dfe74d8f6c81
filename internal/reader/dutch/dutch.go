// Package dutch cleans assembled screen descriptions for Dutch speech
// synthesis. PostProcess is a pure function and idempotent: feeding its
// output back in yields the same string.
package dutch

import (
	"regexp"
	"strings"
)

var (
	whitespacePattern = regexp.MustCompile(`\s+`)

	// Structural labels help while assembling and debugging but sound
	// robotic when spoken.
	structuralLabelPattern = regexp.MustCompile(`(?i)\b(?:knop|pagina|scherm|sectie|veld):\s*`)

	// Leading filler the source screens like to emit ("Dit is de forum
	// pagina" reads better as "forum pagina").
	fillerPattern = regexp.MustCompile(`(?i)\bdit is (?:de|het|een)\s+`)

	repeatedTerminalPattern = regexp.MustCompile(`([.!?])[.!?]+`)
	danglingPeriodPattern   = regexp.MustCompile(`\.(\s*\.)+`)
	missingSpacePattern     = regexp.MustCompile(`([.!?,])(\p{L})`)
)

// replacement rewrites one abbreviation to its spoken form. Initialisms are
// spelled out letter by letter; title abbreviations get the full word.
type replacement struct {
	pattern *regexp.Regexp
	spoken  string
}

var abbreviations = []replacement{
	{regexp.MustCompile(`\bTTS\b`), "T T S"},
	{regexp.MustCompile(`\bURL\b`), "U R L"},
	{regexp.MustCompile(`\bAPI\b`), "A P I"},
	{regexp.MustCompile(`\bFAQ\b`), "F A Q"},
	{regexp.MustCompile(`\bDr\.`), "Dokter"},
	{regexp.MustCompile(`\bDhr\.`), "De heer"},
	{regexp.MustCompile(`\bMevr\.`), "Mevrouw"},
	{regexp.MustCompile(`\bbijv\.`), "bijvoorbeeld"},
	{regexp.MustCompile(`\bo\.a\.`), "onder andere"},
}

// PostProcess normalizes raw assembled text into a speakable Dutch sentence.
// Whitespace is normalized both before and after the substantive passes:
// before so the patterns see canonical spacing, after because substitutions
// reintroduce doubled spaces.
func PostProcess(raw string) string {
	text := normalizeWhitespace(raw)
	if text == "" {
		return ""
	}

	text = structuralLabelPattern.ReplaceAllString(text, "")
	text = fillerPattern.ReplaceAllString(text, "")
	text = danglingPeriodPattern.ReplaceAllString(text, ".")
	text = repeatedTerminalPattern.ReplaceAllString(text, "$1")
	text = missingSpacePattern.ReplaceAllString(text, "$1 $2")

	for _, abbr := range abbreviations {
		text = abbr.pattern.ReplaceAllString(text, abbr.spoken)
	}

	text = normalizeWhitespace(text)
	text = strings.TrimLeft(text, ".,!? ")
	if text == "" {
		return ""
	}

	if !strings.ContainsRune(".!?", rune(text[len(text)-1])) {
		text += "."
	}
	return text
}

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
