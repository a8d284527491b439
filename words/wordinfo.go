package words

import (
	"strings"

	"github.com/npillmayer/wordtree/report"
)

// WordInfo is the tree element for a word or phrase.
type WordInfo struct {
	Word      string   // lower-case word, or two words separated by a space
	People    []string // people using the word, in order of first use
	NumPeople int      // len(People), set by Finalize
	Count     int      // number of occurrences
}

// NewWordInfo creates a word entry for a single occurrence by person.
func NewWordInfo(word, person string) *WordInfo {
	return &WordInfo{Word: word, People: []string{person}, Count: 1}
}

// IsPhrase is true for two-word phrases.
func (w *WordInfo) IsPhrase() bool {
	return strings.ContainsRune(w.Word, ' ')
}

// Compare orders word entries by their word.
func Compare(a, b *WordInfo) int {
	return strings.Compare(a.Word, b.Word)
}

// Merge folds a duplicate occurrence into the entry already in the tree.
// The incoming person is appended unless it is the person attributed last,
// which catches repetitions within one response. Occurrences are added up.
func Merge(existing **WordInfo, incoming *WordInfo) {
	cur := *existing
	for _, p := range incoming.People {
		if len(cur.People) == 0 || cur.People[len(cur.People)-1] != p {
			cur.People = append(cur.People, p)
		}
	}
	cur.Count += incoming.Count
}

// Finalize updates derived fields. It is called by the visitors of a word
// tree before the entry is read.
func Finalize(w *WordInfo) {
	w.NumPeople = len(w.People)
}

// Record converts a finalized entry to its output form.
func (w *WordInfo) Record() report.Record {
	return report.Record{
		Word:      w.Word,
		People:    w.People,
		NumPeople: w.NumPeople,
		Count:     w.Count,
	}
}
