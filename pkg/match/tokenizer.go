// Package match implements fuzzy title matching between scraped candidate
// listings and BAXUS catalog entries: tokenization, token-overlap scoring
// with an adaptive threshold, and match resolution with savings math.
package match

import (
	"regexp"
	"strings"
)

// nonTokenChars matches every character that is not a lowercase letter,
// digit, or whitespace. Applied after lowering, so uppercase never survives.
var nonTokenChars = regexp.MustCompile(`[^a-z0-9\s]`)

// Tokenize normalizes a title into an ordered sequence of word tokens:
// lowercase, strip punctuation/symbols, split on whitespace runs, drop
// single-character tokens. Pure and deterministic; candidate titles and
// catalog names go through the exact same path.
func Tokenize(s string) []string {
	cleaned := nonTokenChars.ReplaceAllString(strings.ToLower(s), "")

	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// tokenSet builds a membership set from a token sequence.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
