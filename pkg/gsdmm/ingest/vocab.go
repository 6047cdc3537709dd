package ingest

// Vocabulary maintains the mapping between tokens and dense integer
// ids, assigned in first-seen order. Its size is the V parameter the
// sampler needs: the number of distinct tokens in the corpus.
type Vocabulary struct {
	tokens []string
	ids    map[string]int
}

// NewVocabulary creates an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{ids: make(map[string]int)}
}

// Add registers every token of doc, returning the vocabulary unchanged
// for tokens already present.
func (v *Vocabulary) Add(doc []string) {
	for _, w := range doc {
		if _, ok := v.ids[w]; !ok {
			v.ids[w] = len(v.tokens)
			v.tokens = append(v.tokens, w)
		}
	}
}

// Len returns the number of distinct tokens seen.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}

// ID returns the id of token, or -1 if the token is unknown.
func (v *Vocabulary) ID(token string) int {
	if id, ok := v.ids[token]; ok {
		return id
	}
	return -1
}

// Token returns the token with the given id.
func (v *Vocabulary) Token(id int) string {
	return v.tokens[id]
}
