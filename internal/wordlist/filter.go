package wordlist

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Rules filter raw tokens before grouping.
type Rules struct {
	// MinLetters drops tokens shorter than this many runes. Must be >= 2.
	MinLetters int
	// ExcludeCapitals drops tokens whose first rune is an uppercase letter,
	// typically proper names.
	ExcludeCapitals bool
}

// Validate rejects unusable rules. It runs before any word list I/O so a bad
// configuration never produces partial output.
func (r Rules) Validate() error {
	if r.MinLetters < 2 {
		return fmt.Errorf("minimum number of letters must be at least 2, got %d", r.MinLetters)
	}
	return nil
}

// Filter returns the tokens eligible for grouping. Tokens keep their original
// text; casing normalization happens later in signature computation, never
// here.
func Filter(tokens []string, rules Rules) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if utf8.RuneCountInString(token) < rules.MinLetters {
			continue
		}
		if rules.ExcludeCapitals {
			first, _ := utf8.DecodeRuneInString(token)
			if unicode.IsUpper(first) {
				continue
			}
		}
		kept = append(kept, token)
	}
	return kept
}
