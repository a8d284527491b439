package words

import (
	"bufio"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits response texts into words or two-word phrases.
// The zero value is ready to use.
type Tokenizer struct {
	// Fold removes diacritics, so "café" and "cafe" count as one word.
	Fold bool
}

// Tokens splits text at whitespace. Segments are found by the UAX #14
// line-wrap algorithm and joined until a segment ends in whitespace, which
// leaves hyphenated words and the like in one piece.
func (tk Tokenizer) Tokens(text string) []string {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	var tokens []string
	var token strings.Builder
	flush := func() {
		if t := strings.TrimSpace(token.String()); t != "" {
			tokens = append(tokens, t)
		}
		token.Reset()
	}
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		token.WriteString(frag)
		if endsInSpace(frag) {
			flush()
		}
	}
	flush()
	return tokens
}

func endsInSpace(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) != s
}

// Words returns the countable words of text. Tokens are normalized and
// split at '-', '/' and '_'; numbers and stop words are dropped.
func (tk Tokenizer) Words(text string) []string {
	var words []string
	for _, token := range tk.Tokens(text) {
		words = tk.appendWords(words, tk.normalize(token))
	}
	return words
}

func (tk Tokenizer) appendWords(words []string, w string) []string {
	if i := strings.IndexAny(w, splitChars); i >= 0 {
		words = tk.appendWords(words, trimSpecial(w[:i]))
		return tk.appendWords(words, trimSpecial(w[i+1:]))
	}
	if w == "" || isNumber(w) || IsStopWord(w) {
		return words
	}
	return append(words, w)
}

// Phrases returns the two-word phrases of text, built from each token and
// its successor. A token ending a clause does not start a phrase, and
// phrases starting or ending with a filler word are dropped.
func (tk Tokenizer) Phrases(text string) []string {
	tokens := tk.Tokens(text)
	var phrases []string
	for i := 1; i < len(tokens); i++ {
		if strings.ContainsAny(lastRune(tokens[i-1]), punctuation) {
			continue
		}
		w1, w2 := tk.normalize(tokens[i-1]), tk.normalize(tokens[i])
		if w1 == "" || w2 == "" || isPhraseStopWord(w1) || isPhraseStopWord(w2) {
			continue
		}
		phrases = append(phrases, w1+" "+w2)
	}
	return phrases
}

func isPhraseStopWord(w string) bool {
	_, ok := phraseStopWords[w]
	return ok
}

// normalize lower-cases a token, optionally folds it, and strips special
// characters from both ends.
func (tk Tokenizer) normalize(token string) string {
	w := strings.ToLower(token)
	if tk.Fold {
		w = fold(w)
	}
	return trimSpecial(w)
}

// fold removes non-spacing marks after canonical decomposition.
func fold(s string) string {
	// the transformer is stateful, so it is set up for every call
	normFunc := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(normFunc, s)
	if err != nil {
		tracer().Errorf("words: cannot fold %q: %v", s, err)
		return s
	}
	return folded
}

func trimSpecial(w string) string {
	return strings.Trim(w, specialChars)
}

func lastRune(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return string(r[len(r)-1])
}

// isNumber is true for tokens made of digits and decimal separators only.
func isNumber(w string) bool {
	digits := 0
	for _, r := range w {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return digits > 0
}
