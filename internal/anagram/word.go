package anagram

// Word pairs an input token with its cached signature. The original text is
// preserved untouched for output; only the signature reflects the
// ignore-capitals rule.
type Word struct {
	Text      string
	Signature string
}

// NewWord builds a Word, computing its signature once.
func NewWord(text string, ignoreCapitals bool) Word {
	return Word{
		Text:      text,
		Signature: Signature(text, ignoreCapitals),
	}
}

// Words builds a Word for every token.
func Words(tokens []string, ignoreCapitals bool) []Word {
	words := make([]Word, 0, len(tokens))
	for _, token := range tokens {
		words = append(words, NewWord(token, ignoreCapitals))
	}
	return words
}

// IsAnagramOf reports whether two words share a signature.
func (w Word) IsAnagramOf(other Word) bool {
	return w.Signature == other.Signature
}
