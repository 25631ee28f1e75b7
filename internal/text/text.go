// Package text provides the pure string utilities the casefile core is
// built on: whitespace normalization, preview truncation, filler detection,
// and the lightweight grammatical sniffing used by the hypothesis
// synthesizer.
// Implements: prd004-hypothesis-text R1 (normalization), R4 (sniffing);
//
//	docs/ARCHITECTURE § Text Utilities.
package text

import (
	"regexp"
	"strings"
	"unicode"
)

// whitespaceRe collapses any run of whitespace to a single space.
var whitespaceRe = regexp.MustCompile(`\s+`)

// Clean trims the string and collapses internal whitespace runs to single
// spaces.
func Clean(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// StripTrailingPunct removes trailing sentence punctuation (periods, commas,
// semicolons, colons, exclamation and question marks) and any whitespace
// exposed by the removal.
func StripTrailingPunct(s string) string {
	return strings.TrimRight(s, " \t.,;:!?")
}

// Normalize is the commit-time normalization applied to free-text hypothesis
// fields: trim, collapse whitespace, strip trailing punctuation.
func Normalize(s string) string {
	return StripTrailingPunct(Clean(s))
}

// Ellipsis is appended to truncated preview fragments.
const Ellipsis = "…"

// Truncate shortens s to at most max runes, appending an ellipsis when
// anything was cut. A max of zero or less returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + Ellipsis
}

// fillerTokens are values that carry no information when typed into a
// free-text field.
var fillerTokens = map[string]bool{
	"n/a":     true,
	"na":      true,
	"none":    true,
	"tbd":     true,
	"tba":     true,
	"unknown": true,
	"-":       true,
	"--":      true,
	"?":       true,
}

// IsFiller reports whether s is a discouraged placeholder value such as
// "n/a" or "tbd".
func IsFiller(s string) bool {
	return fillerTokens[strings.ToLower(Clean(s))]
}

// Meaningful reports whether s carries enough content to be worth rendering:
// at least min runes after cleaning, and not a filler token.
func Meaningful(s string, min int) bool {
	c := Clean(s)
	if len([]rune(c)) < min {
		return false
	}
	return !IsFiller(c)
}

// FirstWord returns the first whitespace-delimited token of s, lowercased.
func FirstWord(s string) string {
	c := Clean(s)
	if i := strings.IndexFunc(c, unicode.IsSpace); i >= 0 {
		c = c[:i]
	}
	return strings.ToLower(c)
}

// copulaWords are the copular verb forms the sniffer recognizes at the start
// of an accusation.
var copulaWords = map[string]bool{
	"is":   true,
	"are":  true,
	"was":  true,
	"were": true,
}

// StartsWithCopula reports whether the first word of s is a copula
// (is/are/was/were).
func StartsWithCopula(s string) bool {
	return copulaWords[FirstWord(s)]
}

// IsGerund reports whether the word looks like a gerund: an "-ing" ending on
// a token long enough that the ending is a suffix rather than the word
// itself ("ring", "king" do not qualify).
func IsGerund(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	return len(w) >= 5 && strings.HasSuffix(w, "ing")
}

// StartsWithGerund reports whether the first word of s is a gerund.
func StartsWithGerund(s string) bool {
	return IsGerund(FirstWord(s))
}

// domainVerbs is a curated set of verbs common in incident hypotheses.
// Matched as whole lowercase tokens.
var domainVerbs = map[string]bool{
	"block": true, "blocks": true,
	"break": true, "breaks": true,
	"corrupt": true, "corrupts": true,
	"crash": true, "crashes": true,
	"degrade": true, "degrades": true,
	"drop": true, "drops": true,
	"fail": true, "fails": true,
	"leak": true, "leaks": true,
	"lose": true, "loses": true,
	"overheat": true, "overheats": true,
	"reject": true, "rejects": true,
	"stall": true, "stalls": true,
	"starve": true, "starves": true,
	"throttle": true, "throttles": true,
	"timeout": true, "timeouts": true,
}

// verbSuffixRe matches tokens with verb-like "-ing"/"-ed" endings.
var verbSuffixRe = regexp.MustCompile(`(?i)\b[a-z]{2,}(?:ing|ed)\b`)

// toVerbRe matches infinitive "to <verb>" phrases.
var toVerbRe = regexp.MustCompile(`(?i)\bto [a-z]+\b`)

// HasVerb reports whether s contains a verb-like pattern: a curated domain
// verb, an "-ing"/"-ed" ending, or a "to <verb>" phrase.
func HasVerb(s string) bool {
	for _, tok := range strings.Fields(strings.ToLower(Clean(s))) {
		if domainVerbs[strings.Trim(tok, ".,;:!?")] {
			return true
		}
	}
	return verbSuffixRe.MatchString(s) || toVerbRe.MatchString(s)
}

// LooksPlural reports whether the suspect text reads as a plural subject:
// a conjunction ("and", "&") or a plural-looking final token.
func LooksPlural(s string) bool {
	c := strings.ToLower(Clean(s))
	if c == "" {
		return false
	}
	if strings.Contains(c, " and ") || strings.Contains(c, "&") {
		return true
	}
	fields := strings.Fields(c)
	last := strings.Trim(fields[len(fields)-1], ".,;:!?")
	if len(last) < 3 {
		return false
	}
	// Trailing "s" that is not part of "-ss"/"-us"/"-is" endings.
	if !strings.HasSuffix(last, "s") {
		return false
	}
	switch {
	case strings.HasSuffix(last, "ss"), strings.HasSuffix(last, "us"), strings.HasSuffix(last, "is"):
		return false
	}
	return true
}
