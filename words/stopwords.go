package words

// stopWords are dropped from the input. The list holds the most frequent
// English words.
var stopWords = makeSet(
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i", "it",
	"for", "not", "on", "with", "he", "as", "you", "do", "at", "this", "but", "his", "by", "from",
	"they", "we", "say", "her", "she", "or", "an", "will", "my", "all", "would", "there", "their",
	"what", "so", "if", "about", "who", "get", "which", "go", "me", "when", "make", "just", "him",
	"into", "your",
)

// phraseStopWords may not start or end a phrase. Pronouns and the like are
// fine inside running text, but a phrase like "the cat" is just "cat".
var phraseStopWords = makeSet(
	"the", "a", "an", "and", "or", "but", "of", "to", "in", "on", "at", "by", "for", "with",
	"from", "as", "is", "are", "was", "were", "be", "it", "its", "that", "this", "so", "if",
)

// specialChars are stripped from both ends of a token.
const specialChars = ",.\"'?;:!-()[]\n“”‘’…"

// splitChars separate a token into several words.
const splitChars = "-/_"

// punctuation at the end of a token closes a phrase.
const punctuation = ".,;:!?…"

func makeSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// IsStopWord reports whether w is dropped when counting single words.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
