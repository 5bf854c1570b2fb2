package match

// Adaptive threshold parameters. Short catalog names need fewer confirming
// tokens to avoid false negatives; long names need more to avoid false
// positives from generic word overlap.
const (
	shortNameTokenLimit = 5
	shortNameThreshold  = 3
	longNameThreshold   = 5
)

// Score counts how many tokens of the catalog name appear in the candidate
// title's token set. The catalog-name side is the scored side; the overlap is
// asymmetric on purpose, so extra words in the scraped title never penalize
// a match.
func Score(candidateTitle, catalogName string) int {
	titleTokens := tokenSet(Tokenize(candidateTitle))

	score := 0
	for _, tok := range Tokenize(catalogName) {
		if _, ok := titleTokens[tok]; ok {
			score++
		}
	}
	return score
}

// Threshold returns the minimum overlap score required for the given catalog
// name: 3 for names of at most 5 tokens, 5 otherwise.
func Threshold(catalogName string) int {
	if len(Tokenize(catalogName)) <= shortNameTokenLimit {
		return shortNameThreshold
	}
	return longNameThreshold
}

// Matches reports whether the candidate title clears the catalog name's
// own threshold.
func Matches(candidateTitle, catalogName string) bool {
	return Score(candidateTitle, catalogName) >= Threshold(catalogName)
}
