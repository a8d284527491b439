package words

import (
	"io"

	"github.com/npillmayer/wordtree"
	"github.com/npillmayer/wordtree/report"
)

// Corpus collects the words of all responses of a survey in a word tree.
// The words of one response are added by setting the response as input and
// parsing it.
type Corpus struct {
	Tokenizer Tokenizer
	tree      *wordtree.Tree[*WordInfo]
	text      string
	person    string
}

// NewCorpus creates an empty corpus.
func NewCorpus(tokenizer Tokenizer) *Corpus {
	tree, err := wordtree.New(wordtree.Config[*WordInfo]{
		Ordering: wordtree.ByComparator(Compare),
		Merge:    Merge,
	})
	if err != nil {
		panic(err) // static configuration
	}
	return &Corpus{Tokenizer: tokenizer, tree: tree}
}

// SetInput sets the text to be parsed next and the person who wrote it.
func (c *Corpus) SetInput(text, person string) {
	c.text = text
	c.person = person
}

// Parse adds the words of the current input to the corpus, or its two-word
// phrases if phrases is set. It returns the number of words added,
// duplicates included.
func (c *Corpus) Parse(phrases bool) int {
	var items []string
	if phrases {
		items = c.Tokenizer.Phrases(c.text)
	} else {
		items = c.Tokenizer.Words(c.text)
	}
	for _, w := range items {
		c.Add(w, c.person)
	}
	tracer().Debugf("words: %d items from %s", len(items), c.person)
	return len(items)
}

// Add counts a single occurrence of an already normalized word.
func (c *Corpus) Add(word, person string) {
	c.tree.Insert(NewWordInfo(word, person))
}

// Len is the number of distinct words.
func (c *Corpus) Len() int {
	return c.tree.Len()
}

// Tree gives access to the underlying word tree.
func (c *Corpus) Tree() *wordtree.Tree[*WordInfo] {
	return c.tree
}

// Lookup returns the entry for word, if present.
func (c *Corpus) Lookup(word string) (*WordInfo, bool) {
	w, ok := c.tree.Find(&WordInfo{Word: word})
	if !ok {
		return nil, false
	}
	Finalize(*w)
	return *w, true
}

// Words returns copies of all entries in alphabetical order.
func (c *Corpus) Words() []WordInfo {
	words := make([]WordInfo, 0, c.tree.Len())
	c.tree.InOrder(func(w **WordInfo) {
		Finalize(*w)
		words = append(words, **w)
	})
	return words
}

// Records returns all entries in alphabetical order, in output form.
func (c *Corpus) Records() []report.Record {
	records := make([]report.Record, 0, c.tree.Len())
	for w := range c.tree.All() {
		Finalize(*w)
		records = append(records, (*w).Record())
	}
	return records
}

// PrintWords writes one record line per word to w, alphabetically.
func (c *Corpus) PrintWords(w io.Writer) error {
	return c.tree.InOrderTo(w, writeWord)
}

// WriteWords writes one record line per word to the file at path,
// alphabetically. An existing file is overwritten.
func (c *Corpus) WriteWords(path string) error {
	return c.tree.WriteFile(path, writeWord)
}

func writeWord(w **WordInfo, out io.Writer) error {
	Finalize(*w)
	return report.WriteRecord(out, (*w).Record())
}
