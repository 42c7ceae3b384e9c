package anagram

import (
	"io"
	"sort"
	"strings"
)

// Group is a maximal run of words sharing one signature after sorting.
type Group struct {
	Signature string
	Words     []string
}

// GroupWords sorts words by signature and collects every maximal run of equal
// signatures into a Group. The input slice is not modified. The sort is
// stable, so members of a group appear in their original input order.
//
// Groups with fewer than minGroupSize members are discarded; minGroupSize
// values below 1 are treated as 1, which keeps every group including
// singletons.
func GroupWords(words []Word, minGroupSize int) []Group {
	if minGroupSize < 1 {
		minGroupSize = 1
	}

	sorted := make([]Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Signature < sorted[j].Signature
	})

	var groups []Group
	var current *Group
	flush := func() {
		if current != nil && len(current.Words) >= minGroupSize {
			groups = append(groups, *current)
		}
	}
	for _, word := range sorted {
		if current != nil && word.Signature == current.Signature {
			current.Words = append(current.Words, word.Text)
			continue
		}
		flush()
		current = &Group{Signature: word.Signature, Words: []string{word.Text}}
	}
	flush()
	return groups
}

// WriteGroups renders one line per group: member words joined by ", " and
// terminated by a newline.
func WriteGroups(w io.Writer, groups []Group) error {
	for _, group := range groups {
		if _, err := io.WriteString(w, strings.Join(group.Words, ", ")); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
