package anagram

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Signature returns the canonical form of text used for anagram comparison:
// its runes sorted into ascending code-point order. Two words are anagrams of
// each other exactly when their signatures are equal.
//
// With ignoreCapitals set, text is lowercased before sorting, so words that
// differ only by capitalization share a signature. Otherwise upper- and
// lowercase letters are distinct characters.
func Signature(text string, ignoreCapitals bool) string {
	if ignoreCapitals {
		text = cases.Lower(language.Und).String(text)
	}
	runes := []rune(text)
	slices.Sort(runes)
	return string(runes)
}
